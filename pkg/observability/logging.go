package observability

import (
	"context"
	"log/slog"

	statemachines "github.com/apfeiffer1/selenium-state-machines"
)

// LoggingHooks returns lifecycle hooks that log every run event through
// logger. Transitions and state entries log at Info; assertion failures
// and failed runs at Error.
func LoggingHooks(logger *slog.Logger) statemachines.LifecycleHooks {
	return statemachines.LifecycleHooks{
		OnRunStart: func(ctx context.Context, e *statemachines.RunEvent) {
			logger.Info("run_start", "run_id", e.RunID, "machine", e.Machine)
		},
		OnTransition: func(ctx context.Context, e *statemachines.TransitionEvent) {
			logger.Info("transition", "run_id", e.RunID, "transition", e.Transition, "step", e.Step)
		},
		OnStateEnter: func(ctx context.Context, e *statemachines.StateEvent) {
			logger.Info("state_enter", "run_id", e.RunID, "state", e.State, "step", e.Step)
		},
		OnAssertionFailure: func(ctx context.Context, e *statemachines.AssertionEvent) {
			logger.Error("assertion_failure",
				"run_id", e.RunID,
				"state", e.State,
				"assertion_index", e.Index,
				"error", e.Err,
			)
		},
		OnRunEnd: func(ctx context.Context, e *statemachines.RunEndEvent) {
			if e.Err != nil {
				logger.Error("run_end",
					"run_id", e.RunID,
					"machine", e.Machine,
					"steps", e.Steps,
					"duration", e.Duration,
					"error", e.Err,
				)
				return
			}
			logger.Info("run_end",
				"run_id", e.RunID,
				"machine", e.Machine,
				"steps", e.Steps,
				"duration", e.Duration,
			)
		},
	}
}

// Merge combines several hook sets into one. For each event every non-nil
// callback is invoked in argument order.
func Merge(hooks ...statemachines.LifecycleHooks) statemachines.LifecycleHooks {
	merged := statemachines.LifecycleHooks{}
	merged.OnRunStart = func(ctx context.Context, e *statemachines.RunEvent) {
		for _, h := range hooks {
			if h.OnRunStart != nil {
				h.OnRunStart(ctx, e)
			}
		}
	}
	merged.OnTransition = func(ctx context.Context, e *statemachines.TransitionEvent) {
		for _, h := range hooks {
			if h.OnTransition != nil {
				h.OnTransition(ctx, e)
			}
		}
	}
	merged.OnStateEnter = func(ctx context.Context, e *statemachines.StateEvent) {
		for _, h := range hooks {
			if h.OnStateEnter != nil {
				h.OnStateEnter(ctx, e)
			}
		}
	}
	merged.OnAssertionFailure = func(ctx context.Context, e *statemachines.AssertionEvent) {
		for _, h := range hooks {
			if h.OnAssertionFailure != nil {
				h.OnAssertionFailure(ctx, e)
			}
		}
	}
	merged.OnRunEnd = func(ctx context.Context, e *statemachines.RunEndEvent) {
		for _, h := range hooks {
			if h.OnRunEnd != nil {
				h.OnRunEnd(ctx, e)
			}
		}
	}
	return merged
}
