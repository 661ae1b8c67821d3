// Package metrics exposes board activity to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics implements board.Recorder and analysis.Observer.
type Metrics struct {
	gatherer prometheus.Gatherer

	mutations  *prometheus.CounterVec
	rejections *prometheus.CounterVec
	history    *prometheus.CounterVec
	analysis   *prometheus.HistogramVec
}

// New registers the board metrics with reg. A nil reg uses a fresh registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	return &Metrics{
		gatherer: reg,
		mutations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "classboard_mutations_total",
			Help: "Committed board mutations by operation",
		}, []string{"op"}),
		rejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "classboard_rejections_total",
			Help: "Rejected or declined board mutations by operation and reason",
		}, []string{"op", "reason"}),
		history: f.NewCounterVec(prometheus.CounterOpts{
			Name: "classboard_history_total",
			Help: "Undo and redo steps taken",
		}, []string{"direction"}),
		analysis: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "classboard_analysis_duration_seconds",
			Help:    "Remote analysis duration by result kind",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 9), // 0.25s to ~64s
		}, []string{"kind"}),
	}
}

func (m *Metrics) Mutation(op string) {
	m.mutations.WithLabelValues(op).Inc()
}

func (m *Metrics) Rejected(op, reason string) {
	m.rejections.WithLabelValues(op, reason).Inc()
}

func (m *Metrics) History(direction string) {
	m.history.WithLabelValues(direction).Inc()
}

func (m *Metrics) AnalysisDuration(kind string, d time.Duration) {
	m.analysis.WithLabelValues(kind).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
