package observability_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	statemachines "github.com/apfeiffer1/selenium-state-machines"
	"github.com/apfeiffer1/selenium-state-machines/pkg/observability"
)

func buildMachine(hooks statemachines.LifecycleHooks, fail bool) *statemachines.StateMachine {
	m := statemachines.New("observed",
		statemachines.WithDriverProvider(statemachines.StaticDriverProvider(nil)),
		statemachines.WithHooks(hooks),
	)
	start, _ := m.AddTransition("open", func(r *statemachines.Runner) error { return nil })
	start.NewTargetState("landing", func(r *statemachines.Runner) error {
		if fail {
			return errors.New("header missing")
		}
		return nil
	})
	return m
}

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	m := buildMachine(observability.LoggingHooks(logger), true)
	_, err := m.Run(context.Background())
	require.Error(t, err)

	out := buf.String()
	for _, want := range []string{
		`"msg":"run_start"`,
		`"transition":"open"`,
		`"state":"landing"`,
		`"msg":"assertion_failure"`,
		`"assertion_index":0`,
		`"msg":"run_end"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}

func TestMetricsHooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	m := buildMachine(metrics.Hooks(), false)
	_, err = m.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1.0,
		testutil.ToFloat64(metrics.TransitionsTotal.WithLabelValues("open")))
	assert.Equal(t, 1.0,
		testutil.ToFloat64(metrics.StatesTotal.WithLabelValues("landing")))
	assert.Equal(t, 1.0,
		testutil.ToFloat64(metrics.RunsTotal.WithLabelValues("observed", "success")))
	assert.Equal(t, 0.0,
		testutil.ToFloat64(metrics.AssertionFailures.WithLabelValues("landing")))
}

func TestMetricsHooks_Failure(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.MustNewMetrics(reg)

	m := buildMachine(metrics.Hooks(), true)
	_, err := m.Run(context.Background())
	require.Error(t, err)

	assert.Equal(t, 1.0,
		testutil.ToFloat64(metrics.AssertionFailures.WithLabelValues("landing")))
	assert.Equal(t, 1.0,
		testutil.ToFloat64(metrics.RunsTotal.WithLabelValues("observed", "failure")))
}

func TestMerge(t *testing.T) {
	var first, second []string
	a := statemachines.LifecycleHooks{
		OnTransition: func(ctx context.Context, e *statemachines.TransitionEvent) {
			first = append(first, e.Transition)
		},
	}
	b := statemachines.LifecycleHooks{
		OnTransition: func(ctx context.Context, e *statemachines.TransitionEvent) {
			second = append(second, e.Transition)
		},
		OnRunEnd: func(ctx context.Context, e *statemachines.RunEndEvent) {
			second = append(second, "end")
		},
	}

	m := buildMachine(observability.Merge(a, b), false)
	_, err := m.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"open"}, first)
	assert.Equal(t, []string{"open", "end"}, second)
}
