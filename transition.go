package statemachines

// Transition is a directed edge in the test graph: a named browser-driving
// action that moves the walk from one state (or the machine's start) to
// its target state. The target is bound exactly once, either by linking an
// existing state or by creating a new one.
type Transition struct {
	name    string
	action  ActionFunc
	guard   GuardFunc
	source  *State // nil for the start transition
	target  *State
	machine *StateMachine
}

// TransitionOption configures a transition at construction time.
type TransitionOption func(*Transition)

// WithGuard sets the transition's guard predicate. Without a guard the
// transition is always eligible.
func WithGuard(guard GuardFunc) TransitionOption {
	return func(t *Transition) {
		t.guard = guard
	}
}

// Name returns the transition's machine-wide unique name.
func (t *Transition) Name() string {
	return t.name
}

// Source returns the state this transition leaves, or nil for the start
// transition.
func (t *Transition) Source() *State {
	return t.source
}

// Target returns the transition's target state, or nil if it has not been
// bound yet.
func (t *Transition) Target() *State {
	return t.target
}

// SetTargetState binds a previously constructed state as this transition's
// target and returns it for chaining. Binding twice fails with
// ErrTargetAlreadySet and leaves the original target unchanged; a state
// owned by another machine is rejected with ErrForeignState.
func (t *Transition) SetTargetState(state *State) (*State, error) {
	if t.target != nil {
		return nil, ErrTargetAlreadySet
	}
	if state.machine != t.machine {
		return nil, ErrForeignState
	}
	t.target = state
	return state, nil
}

// NewTargetState registers a new state on the machine, built from the
// given ordered assertions, and binds it as this transition's target. The
// returned state can grow further outgoing transitions, which is what
// gives graph construction its fluent shape:
//
//	start, _ := m.AddTransition("open_login", openLogin)
//	login, _ := start.NewTargetState("login_page", formVisible)
//	submit, _ := login.AddOutgoingTransition("submit", submitForm)
//	_, _ = submit.NewTargetState("dashboard", bannerVisible)
func (t *Transition) NewTargetState(name string, assertions ...AssertionFunc) (*State, error) {
	if t.target != nil {
		return nil, ErrTargetAlreadySet
	}
	state, err := t.machine.NewState(name, assertions...)
	if err != nil {
		return nil, err
	}
	t.target = state
	return state, nil
}

// enabled reports whether the transition may be taken given the current
// runner. A nil guard means always eligible.
func (t *Transition) enabled(r *Runner) bool {
	if t.guard == nil {
		return true
	}
	return t.guard(r)
}
