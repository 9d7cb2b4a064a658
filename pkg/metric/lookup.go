package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Lookup = (*lookupMetrics)(nil)

type lookupMetrics struct {
	outcomes    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	stale       prometheus.Counter
	transitions *prometheus.CounterVec
}

func newLookupMetrics(registry *promRegistry) *lookupMetrics {
	outcomes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_lookups_total",
			Help: "Total number of order lookups by outcome",
		},
		[]string{"outcome"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_lookup_duration_seconds",
			Help:    "Time from request start to a usable outcome",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"outcome"},
	)

	stale := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_lookup_stale_responses_total",
			Help: "Responses discarded because a newer search had already started",
		},
	)

	transitions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "widget_state_transitions_total",
			Help: "Display state transitions by target state",
		},
		[]string{"state"},
	)

	registry.registry.MustRegister(outcomes, duration, stale, transitions)

	return &lookupMetrics{
		outcomes:    outcomes,
		duration:    duration,
		stale:       stale,
		transitions: transitions,
	}
}

func (m *lookupMetrics) Outcome(outcome string, duration time.Duration) {
	m.outcomes.WithLabelValues(outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func (m *lookupMetrics) StaleResponse() {
	m.stale.Inc()
}

func (m *lookupMetrics) Transition(state string) {
	m.transitions.WithLabelValues(state).Inc()
}
