package statemachines

import "fmt"

// AssertionFunc checks one expectation against the current Runner. A nil
// return means the assertion holds; an error signals failure and aborts
// the run.
type AssertionFunc func(*Runner) error

// ActionFunc performs a side effect, typically driving the browser. An
// error fails the run.
type ActionFunc func(*Runner) error

// GuardFunc decides whether a transition is eligible during traversal. It
// must be a pure predicate over the Runner's store and driver-observable
// state; the engine does not enforce purity but deterministic replay
// depends on it.
type GuardFunc func(*Runner) bool

// State is a node in the test graph: a point where a fixed, ordered set
// of assertions must hold. A state with no outgoing transitions is
// terminal. States are created through Transition.NewTargetState,
// StateMachine.AddState or StateMachine.NewState; their assertion list is
// fixed at construction.
type State struct {
	name       string
	assertions []AssertionFunc
	outgoing   []*Transition
	machine    *StateMachine
}

// Name returns the state's machine-wide unique name.
func (s *State) Name() string {
	return s.name
}

// Outgoing returns the state's outgoing transitions in the order they
// were added. The returned slice is a copy.
func (s *State) Outgoing() []*Transition {
	out := make([]*Transition, len(s.outgoing))
	copy(out, s.outgoing)
	return out
}

// AddOutgoingTransition creates a transition named name leaving this
// state and returns it so the caller can chain a target-state call:
//
//	t, err := dashboard.AddOutgoingTransition("logout", clickLogout)
//	...
//	_, err = t.NewTargetState("logged_out", loginFormVisible)
//
// The transition's guard defaults to always-true; use WithGuard to
// restrict it. The name must be unique across the whole machine.
func (s *State) AddOutgoingTransition(name string, action ActionFunc, opts ...TransitionOption) (*Transition, error) {
	if action == nil {
		return nil, fmt.Errorf("transition %q: action must not be nil", name)
	}
	t := &Transition{
		name:    name,
		action:  action,
		source:  s,
		machine: s.machine,
	}
	for _, opt := range opts {
		opt(t)
	}
	if err := s.machine.registerTransition(t); err != nil {
		return nil, err
	}
	s.outgoing = append(s.outgoing, t)
	return t, nil
}

// runAssertions executes the state's assertions in order against r,
// stopping at the first failure.
func (s *State) runAssertions(r *Runner) *AssertionError {
	for i, assert := range s.assertions {
		if err := assert(r); err != nil {
			return &AssertionError{State: s.name, Index: i, Err: err}
		}
	}
	return nil
}
