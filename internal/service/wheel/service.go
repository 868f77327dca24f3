package wheel

import (
	"math/rand/v2"
	"sync"
	"time"
	"wheel_backend/internal/config"
	"wheel_backend/internal/metrics"
	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"
	"wheel_backend/internal/service"

	"go.uber.org/zap"
)

// RNG Источник случайности, подменяется в тестах
type RNG interface {
	// Intn возвращает случайное число из [0, n)
	Intn(n int) int
}

// Timer Отложенный вызов, который можно остановить
type Timer interface {
	Stop() bool
}

// Clock Источник времени и отложенных вызовов
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

type Option func(*serv)

func WithRNG(rng RNG) Option {
	return func(s *serv) {
		s.rng = rng
	}
}

func WithClock(clock Clock) Option {
	return func(s *serv) {
		s.clock = clock
	}
}

// spinTask Отложенный показ результата одного спина
type spinTask struct {
	plan  model.SpinPlan
	timer Timer
	done  chan struct{}
}

type serv struct {
	rng       RNG
	clock     Clock
	statsRepo repository.WheelStatsRepository
	metrics   *metrics.Metrics
	log       *zap.Logger

	spinDuration time.Duration
	easing       string

	mtx          sync.Mutex
	segmentCount int
	state        model.WheelState
	rotation     float64
	result       int    // 0 - результата нет
	spinID       string // Последний запущенный спин
	spin         *spinTask
	closed       bool
}

// NewWheelService Создать колесо с 8 сегментами в состоянии Idle
func NewWheelService(
	cfg config.WheelConfig,
	statsRepo repository.WheelStatsRepository,
	m *metrics.Metrics,
	log *zap.Logger,
	opts ...Option,
) service.WheelService {
	s := &serv{
		rng:          stdRNG{},
		clock:        realClock{},
		statsRepo:    statsRepo,
		metrics:      m,
		log:          log,
		spinDuration: cfg.SpinDuration(),
		easing:       cfg.Easing(),
		segmentCount: DefaultSegments,
		state:        model.Idle,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	s.metrics.SegmentCount(s.segmentCount)
	return s
}

func (s *serv) Wheel() model.Wheel {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.snapshot()
}

func (s *serv) Stats() model.Stats {
	s.mtx.Lock()
	n := s.segmentCount
	s.mtx.Unlock()
	return s.statsRepo.Stats(n)
}

// snapshot Вызывается под мьютексом
func (s *serv) snapshot() model.Wheel {
	w := model.Wheel{
		SegmentCount: s.segmentCount,
		State:        s.state,
		Rotation:     s.rotation,
		SpinDuration: s.spinDuration,
		Easing:       s.easing,
		Segments:     Layout(s.segmentCount),
	}
	w.SpinID = s.spinID
	if s.state == model.Idle && s.result > 0 {
		result := s.result
		w.Result = &result
	}
	return w
}
