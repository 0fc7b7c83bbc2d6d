package server

import (
	"time"

	"github.com/katalvlaran/waypoint/route"
	"github.com/katalvlaran/waypoint/search"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "waypoint"

// metrics are registered on the server's own registry so that several
// servers (and tests) can coexist in one process.
type metrics struct {
	steps    *prometheus.CounterVec
	searches *prometheus.CounterVec
	duration *prometheus.HistogramVec
	streams  prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		// Labels: algorithm
		steps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "search",
			Name:      "steps_total",
			Help:      "Next calls made by all searches",
		}, []string{"algorithm"}),

		// Labels: algorithm, status (found, not_found, aborted)
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "searches_total",
			Help:      "Searches driven, by outcome",
		}, []string{"algorithm", "status"}),

		// Labels: algorithm
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Wall time of a search including pacing",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 15, 60},
		}, []string{"algorithm"}),

		streams: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "streams_active",
			Help:      "Open websocket search streams",
		}),
	}
}

func (m *metrics) observe(res route.Result, elapsed time.Duration) {
	algo := res.Algorithm.String()
	m.steps.WithLabelValues(algo).Add(float64(res.Steps))
	m.searches.WithLabelValues(algo, statusLabel(res.Status)).Inc()
	m.duration.WithLabelValues(algo).Observe(elapsed.Seconds())
}

func statusLabel(s search.Status) string {
	switch s {
	case search.Found:
		return "found"
	case search.NotFound:
		return "not_found"
	default:
		return "aborted"
	}
}
