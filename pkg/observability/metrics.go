// Package observability bridges machine lifecycle hooks to Prometheus.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/okvist/espalier"
)

// Metrics counts machine activity. Wire it into a machine via Hooks:
//
//	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
//	machine, err := b.Build(espalier.WithHooks(metrics.Hooks()))
type Metrics struct {
	transitions *prometheus.CounterVec
	ignored     *prometheus.CounterVec
	entries     *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors. It panics on registration
// conflicts, like prometheus.MustRegister.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "espalier_transitions_total",
				Help: "Completed state transitions, by source, target and triggering event.",
			},
			[]string{"from", "to", "event"},
		),
		ignored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "espalier_ignored_events_total",
				Help: "Dispatches that resolved to the null transition.",
			},
			[]string{"state", "event"},
		),
		entries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "espalier_state_entries_total",
				Help: "State enter hook invocations, by state.",
			},
			[]string{"state"},
		),
	}
	reg.MustRegister(m.transitions, m.ignored, m.entries)
	return m
}

// Hooks returns lifecycle hooks feeding these collectors. The "event" label
// is empty for programmatic transitions.
func (m *Metrics) Hooks() espalier.LifecycleHooks {
	return espalier.LifecycleHooks{
		OnStateEnter: func(e *espalier.StateEvent) {
			m.entries.WithLabelValues(e.State).Inc()
		},
		OnTransition: func(e *espalier.TransitionEvent) {
			m.transitions.WithLabelValues(e.From, e.To, e.Event).Inc()
		},
		OnIgnored: func(e *espalier.DispatchEvent) {
			m.ignored.WithLabelValues(e.State, e.Event).Inc()
		},
	}
}
