package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ Session = (*sessionMetrics)(nil)

type sessionMetrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions *prometheus.CounterVec
	size      prometheus.Gauge
}

func newSessionMetrics(registry *promRegistry) *sessionMetrics {
	hits := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "widget_session_hits_total",
			Help: "Requests that found their widget session",
		},
	)

	misses := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "widget_session_misses_total",
			Help: "Requests that had to start a new widget session",
		},
	)

	evictions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "widget_session_evictions_total",
			Help: "Widget sessions removed from the store",
		},
		[]string{"reason"},
	)

	size := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "widget_sessions",
			Help: "Current number of widget sessions",
		},
	)

	registry.registry.MustRegister(hits, misses, evictions, size)

	return &sessionMetrics{
		hits:      hits,
		misses:    misses,
		evictions: evictions,
		size:      size,
	}
}

func (m *sessionMetrics) Hit() {
	m.hits.Inc()
}

func (m *sessionMetrics) Miss() {
	m.misses.Inc()
}

func (m *sessionMetrics) Eviction(reason string) {
	m.evictions.WithLabelValues(reason).Inc()
}

func (m *sessionMetrics) Size(size int) {
	m.size.Set(float64(size))
}
