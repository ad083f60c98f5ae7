package statemachines

import (
	"errors"
	"fmt"
)

// Construction-time errors. They are reported immediately and fail the
// offending call; the graph keeps whatever partial shape it already had.
var (
	// ErrDuplicateStateName is returned when a state name is already taken
	// within the machine. Names are shared between states and transitions
	// because both become identifiers in the exported graph.
	ErrDuplicateStateName = errors.New("duplicate state name")

	// ErrDuplicateTransitionName is returned when a transition name is
	// already taken within the machine.
	ErrDuplicateTransitionName = errors.New("duplicate transition name")

	// ErrTargetAlreadySet is returned when SetTargetState or NewTargetState
	// is called on a transition that already has a target. The original
	// target is left unchanged.
	ErrTargetAlreadySet = errors.New("transition target already set")

	// ErrStartAlreadySet is returned when AddTransition is called on a
	// machine that already has a start transition. Replacing the start
	// would silently orphan the sub-graph built behind it, so the call is
	// rejected instead.
	ErrStartAlreadySet = errors.New("start transition already set")

	// ErrForeignState is returned when a transition is pointed at a state
	// owned by a different machine.
	ErrForeignState = errors.New("state belongs to a different machine")
)

// Run-time errors. Any of these aborts the walk immediately; no retry or
// partial recovery happens at this layer.
var (
	// ErrNoStartTransition is returned by Run when no start transition has
	// been defined.
	ErrNoStartTransition = errors.New("no start transition defined")

	// ErrNoTargetState is returned by Run when the walk selects a
	// transition whose target was never set.
	ErrNoTargetState = errors.New("transition has no target state")

	// ErrNoDriver is returned by Run when no driver provider is configured
	// or the provider fails to supply a driver handle.
	ErrNoDriver = errors.New("no browser driver available")

	// ErrMaxStepsExceeded is returned by Run when the walk performs more
	// transitions than the configured cap. Guards are arbitrary predicates,
	// so a miswritten guard can keep a cycle enabled forever; the cap turns
	// that into a reported failure instead of a hang.
	ErrMaxStepsExceeded = errors.New("maximum number of steps exceeded")
)

// AssertionError reports the first failing assertion of a state. Index is
// the zero-based position of the assertion in the state's list.
type AssertionError struct {
	State string
	Index int
	Err   error
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion %d of state %q failed: %v", e.Index, e.State, e.Err)
}

func (e *AssertionError) Unwrap() error { return e.Err }

// ActionError reports a transition whose action function returned an error.
type ActionError struct {
	Transition string
	Err        error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action of transition %q failed: %v", e.Transition, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }
