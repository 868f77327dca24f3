package wheel

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode"
	"wheel_backend/internal/middleware"
	"wheel_backend/internal/model"

	"go.uber.org/zap"
)

const (
	MinSegments     = 2
	MaxSegments     = 50
	DefaultSegments = 8
)

// ParseSegmentCount Разбирает сырой ввод количества сегментов.
// Берётся целое в начале строки (пробелы и знак допускаются, хвост отбрасывается).
// Нет цифр или ноль - DefaultSegments, дальше ограничение в [MinSegments, MaxSegments]
func ParseSegmentCount(raw string) int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return DefaultSegments
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Переполнение: Atoi возвращает границу int с нужным знаком
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
			return DefaultSegments
		}
	}
	if n == 0 {
		return DefaultSegments
	}

	return min(max(n, MinSegments), MaxSegments)
}

// SetSegmentCount Меняет количество сегментов, сбрасывает поворот и результат.
// Во время спина ввод заблокирован
func (s *serv) SetSegmentCount(ctx context.Context, raw string) (model.Wheel, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed || s.state == model.Spinning {
		return s.snapshot(), false
	}

	n := ParseSegmentCount(raw)
	s.segmentCount = n
	s.rotation = 0
	s.result = 0
	s.spinID = ""

	s.metrics.SegmentCount(n)
	s.log.Debug("segment count changed",
		zap.String("request_id", middleware.RequestIDFromContext(ctx)),
		zap.String("raw", raw),
		zap.Int("segments", n),
	)

	return s.snapshot(), true
}
