package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelOutcome = "outcome"
	labelSegment = "segment"

	OutcomeStarted   = "started"
	OutcomeIgnored   = "ignored"
	OutcomeRevealed  = "revealed"
	OutcomeCancelled = "cancelled"
)

// Имена метрик: wheel_<name>

type Metrics struct {
	spins        *prometheus.CounterVec
	results      *prometheus.CounterVec
	segmentCount prometheus.Gauge
	spinning     prometheus.Gauge
}

// New Регистрирует метрики колеса в reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		spins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wheel_spins_total",
			Help: "Запуски спина по исходу",
		}, []string{labelOutcome}),
		results: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wheel_results_total",
			Help: "Выпавшие сегменты",
		}, []string{labelSegment}),
		segmentCount: f.NewGauge(prometheus.GaugeOpts{
			Name: "wheel_segment_count",
			Help: "Текущее количество сегментов",
		}),
		spinning: f.NewGauge(prometheus.GaugeOpts{
			Name: "wheel_spinning",
			Help: "1 пока колесо крутится",
		}),
	}
}

func (m *Metrics) SpinStarted() {
	if m == nil {
		return
	}
	m.spins.WithLabelValues(OutcomeStarted).Inc()
	m.spinning.Set(1)
}

func (m *Metrics) SpinIgnored() {
	if m == nil {
		return
	}
	m.spins.WithLabelValues(OutcomeIgnored).Inc()
}

func (m *Metrics) SpinRevealed(result int) {
	if m == nil {
		return
	}
	m.spins.WithLabelValues(OutcomeRevealed).Inc()
	m.results.WithLabelValues(strconv.Itoa(result)).Inc()
	m.spinning.Set(0)
}

func (m *Metrics) SpinCancelled() {
	if m == nil {
		return
	}
	m.spins.WithLabelValues(OutcomeCancelled).Inc()
	m.spinning.Set(0)
}

func (m *Metrics) SegmentCount(n int) {
	if m == nil {
		return
	}
	m.segmentCount.Set(float64(n))
}
