package statemachines

import (
	"context"
	"time"
)

// RunEvent marks the start of a walk.
type RunEvent struct {
	Timestamp time.Time
	RunID     string
	Machine   string
}

// TransitionEvent is emitted just before a transition's action executes.
type TransitionEvent struct {
	Timestamp  time.Time
	RunID      string
	Transition string
	Step       int
}

// StateEvent is emitted when the walk enters a state, before its
// assertions run.
type StateEvent struct {
	Timestamp time.Time
	RunID     string
	State     string
	Step      int
}

// AssertionEvent is emitted when an assertion fails.
type AssertionEvent struct {
	Timestamp time.Time
	RunID     string
	State     string
	Index     int
	Err       error
}

// RunEndEvent marks the end of a walk, successful or not. Err is nil on a
// clean termination.
type RunEndEvent struct {
	Timestamp time.Time
	RunID     string
	Machine   string
	Steps     int
	Duration  time.Duration
	Err       error
}

// LifecycleHooks defines optional callbacks for observing a walk. Nil
// fields are skipped. Hooks run synchronously on the walking goroutine,
// so they should return quickly.
type LifecycleHooks struct {
	OnRunStart         func(context.Context, *RunEvent)
	OnTransition       func(context.Context, *TransitionEvent)
	OnStateEnter       func(context.Context, *StateEvent)
	OnAssertionFailure func(context.Context, *AssertionEvent)
	OnRunEnd           func(context.Context, *RunEndEvent)
}
