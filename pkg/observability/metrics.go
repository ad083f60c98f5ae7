package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	statemachines "github.com/apfeiffer1/selenium-state-machines"
)

// Metrics holds Prometheus collectors for state machine runs. Create one
// with NewMetrics, attach its Hooks to a machine, and expose the
// registry however the host application serves metrics.
type Metrics struct {
	RunsTotal         *prometheus.CounterVec
	TransitionsTotal  *prometheus.CounterVec
	StatesTotal       *prometheus.CounterVec
	AssertionFailures *prometheus.CounterVec
	RunDuration       *prometheus.HistogramVec
}

// NewMetrics builds the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statemachine_runs_total",
				Help: "Total number of state machine runs by outcome",
			},
			[]string{"machine", "outcome"},
		),
		TransitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statemachine_transitions_total",
				Help: "Total number of transitions fired",
			},
			[]string{"transition"},
		),
		StatesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statemachine_state_entries_total",
				Help: "Total number of state entries",
			},
			[]string{"state"},
		),
		AssertionFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statemachine_assertion_failures_total",
				Help: "Total number of failed assertions",
			},
			[]string{"state"},
		),
		RunDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "statemachine_run_duration_seconds",
				Help:    "Duration of state machine runs",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"machine"},
		),
	}

	collectors := []prometheus.Collector{
		m.RunsTotal, m.TransitionsTotal, m.StatesTotal, m.AssertionFailures, m.RunDuration,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNewMetrics is like NewMetrics but panics on registration failure.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	m, err := NewMetrics(reg)
	if err != nil {
		panic(err)
	}
	return m
}

// Hooks returns lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() statemachines.LifecycleHooks {
	return statemachines.LifecycleHooks{
		OnTransition: func(ctx context.Context, e *statemachines.TransitionEvent) {
			m.TransitionsTotal.WithLabelValues(e.Transition).Inc()
		},
		OnStateEnter: func(ctx context.Context, e *statemachines.StateEvent) {
			m.StatesTotal.WithLabelValues(e.State).Inc()
		},
		OnAssertionFailure: func(ctx context.Context, e *statemachines.AssertionEvent) {
			m.AssertionFailures.WithLabelValues(e.State).Inc()
		},
		OnRunEnd: func(ctx context.Context, e *statemachines.RunEndEvent) {
			outcome := "success"
			if e.Err != nil {
				outcome = "failure"
			}
			m.RunsTotal.WithLabelValues(e.Machine, outcome).Inc()
			m.RunDuration.WithLabelValues(e.Machine).Observe(e.Duration.Seconds())
		},
	}
}
