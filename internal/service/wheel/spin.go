package wheel

import (
	"context"
	"fmt"
	"math"
	"wheel_backend/internal/middleware"
	"wheel_backend/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// Полные обороты сверх посадки на сегмент
	minExtraRotations = 5
	maxExtraRotations = 9
)

// Spin Запускает спин. Пока колесо крутится, повторный вызов ничего не меняет
func (s *serv) Spin(ctx context.Context) (model.Wheel, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed || s.state == model.Spinning {
		s.metrics.SpinIgnored()
		return s.snapshot(), false
	}

	plan := s.plan()

	s.state = model.Spinning
	s.result = 0
	s.rotation += plan.Delta
	s.spinID = plan.ID

	task := &spinTask{
		plan: plan,
		done: make(chan struct{}),
	}
	// reveal берёт мьютекс, поэтому сработает не раньше выхода из Spin
	task.timer = s.clock.AfterFunc(plan.Duration, func() { s.reveal(task) })
	s.spin = task

	s.metrics.SpinStarted()
	s.log.Info("spin started",
		zap.String("request_id", middleware.RequestIDFromContext(ctx)),
		zap.String("spin_id", plan.ID),
		zap.Int("segments", s.segmentCount),
		zap.Int("extra_rotations", plan.ExtraRotations),
		zap.Float64("rotation", s.rotation),
	)

	return s.snapshot(), true
}

// plan Выбирает сегмент и угол посадки. Вызывается под мьютексом
func (s *serv) plan() model.SpinPlan {
	extra := minExtraRotations + s.rng.Intn(maxExtraRotations-minExtraRotations+1)
	index := s.rng.Intn(s.segmentCount)

	return model.SpinPlan{
		ID:             uuid.NewString(),
		ExtraRotations: extra,
		Index:          index,
		Delta:          landingDelta(s.rotation, extra, index, s.segmentCount),
		StartedAt:      s.clock.Now(),
		Duration:       s.spinDuration,
	}
}

// landingDelta Угол, на который нужно довернуть колесо из положения rotation,
// чтобы под указателем оказался центр сегмента index.
// При rotation = 0 это extra*360 + (360 - index*sweep) - sweep/2
func landingDelta(rotation float64, extra, index, n int) float64 {
	sweep := 360 / float64(n)
	target := 360 - float64(index)*sweep - sweep/2

	offset := math.Mod(target-math.Mod(rotation, 360), 360)
	if offset < 0 {
		offset += 360
	}
	return float64(extra)*360 + offset
}

// SegmentAt Сегмент (с нуля) под указателем при повороте колеса на rotation градусов
func SegmentAt(rotation float64, n int) int {
	sweep := 360 / float64(n)

	angle := math.Mod(-rotation, 360)
	if angle < 0 {
		angle += 360
	}

	idx := int(math.Floor(angle / sweep))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// reveal Показывает результат по окончании анимации
func (s *serv) reveal(task *spinTask) {
	s.mtx.Lock()
	if s.spin != task {
		// Спин уже снят через Close
		s.mtx.Unlock()
		return
	}
	s.result = task.plan.Index + 1
	s.state = model.Idle
	s.spin = nil
	n := s.segmentCount
	result := s.result
	close(task.done)
	s.mtx.Unlock()

	s.statsRepo.Record(n, result)
	s.metrics.SpinRevealed(result)
	s.log.Info("spin revealed",
		zap.String("spin_id", task.plan.ID),
		zap.Int("result", result),
		zap.Duration("elapsed", s.clock.Now().Sub(task.plan.StartedAt)),
	)
}

// Await Ждёт показа результата текущего спина. В Idle возвращается сразу
func (s *serv) Await(ctx context.Context) (model.Wheel, error) {
	s.mtx.Lock()
	task := s.spin
	if task == nil {
		defer s.mtx.Unlock()
		return s.snapshot(), nil
	}
	s.mtx.Unlock()

	select {
	case <-task.done:
		return s.Wheel(), nil
	case <-ctx.Done():
		return s.Wheel(), fmt.Errorf("await spin %s: %w", task.plan.ID, ctx.Err())
	}
}

// Close Останавливает отложенный показ результата. После Close колесо не крутится
func (s *serv) Close() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	if task := s.spin; task != nil {
		task.timer.Stop()
		s.spin = nil
		s.state = model.Idle
		close(task.done)
		s.metrics.SpinCancelled()
		s.log.Info("spin cancelled", zap.String("spin_id", task.plan.ID))
	}
}
