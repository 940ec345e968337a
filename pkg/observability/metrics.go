package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/canopy/pkg/domain"
)

// Metrics collects engine activity into Prometheus collectors. Wire it into
// a machine with canopy.WithMetrics.
type Metrics struct {
	entries     *prometheus.CounterVec
	exits       *prometheus.CounterVec
	transitions *prometheus.CounterVec
	cycles      prometheus.Counter
	ticks       *prometheus.CounterVec
	depth       prometheus.Histogram
}

// NewMetrics creates and registers the collectors on reg.
// A nil reg falls back to the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		entries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "canopy_state_entries_total",
				Help: "Total number of state activations",
			},
			[]string{"state"},
		),
		exits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "canopy_state_exits_total",
				Help: "Total number of state deactivations",
			},
			[]string{"state"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "canopy_transitions_total",
				Help: "Total number of committed transitions",
			},
			[]string{"source", "target"},
		),
		cycles: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "canopy_resolve_cycles_total",
				Help: "Total number of descent resolutions truncated by the cycle guard",
			},
		),
		ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "canopy_ticks_total",
				Help: "Total number of completed ticks",
			},
			[]string{"phase"},
		),
		depth: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "canopy_active_depth",
				Help:    "Resolved active-path depth observed after each tick",
				Buckets: prometheus.LinearBuckets(0, 1, 8),
			},
		),
	}

	reg.MustRegister(m.entries, m.exits, m.transitions, m.cycles, m.ticks, m.depth)
	return m
}

// Hooks returns the lifecycle hooks feeding this collector.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStateEnter: func(e *domain.StateEvent) {
			m.entries.WithLabelValues(string(e.State)).Inc()
		},
		OnStateExit: func(e *domain.StateEvent) {
			m.exits.WithLabelValues(string(e.State)).Inc()
		},
		OnTransition: func(e *domain.TransitionEvent) {
			m.transitions.WithLabelValues(string(e.Source), string(e.Target)).Inc()
		},
		OnResolveCycle: func(*domain.CycleEvent) {
			m.cycles.Inc()
		},
		OnTickComplete: func(e *domain.TickEvent) {
			m.ticks.WithLabelValues(string(e.Phase)).Inc()
			m.depth.Observe(float64(e.Depth))
		},
	}
}
