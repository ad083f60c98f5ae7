package statemachines

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxSteps caps the number of transitions a single run may take
// when WithMaxSteps is not given.
const DefaultMaxSteps = 1000

// StateMachine owns a directed graph of states and transitions and walks
// it against a browser. Construction happens through AddTransition and
// the fluent State/Transition methods; Run performs the walk.
//
// A StateMachine is not designed for concurrent Run invocations. Each run
// allocates its own Runner and Store, but the machine itself holds no
// locking.
type StateMachine struct {
	name string

	start       *Transition
	states      map[string]*State
	transitions map[string]*Transition

	// Insertion order, kept separately so export and introspection are
	// deterministic.
	stateOrder      []*State
	transitionOrder []*Transition

	provider DriverProvider
	hooks    LifecycleHooks
	logger   *slog.Logger
	maxSteps int
}

// Option configures a StateMachine.
type Option func(*StateMachine)

// WithDriverProvider sets the collaborator that supplies a browser driver
// handle for each run. Without one, Run fails with ErrNoDriver.
func WithDriverProvider(p DriverProvider) Option {
	return func(m *StateMachine) {
		m.provider = p
	}
}

// WithHooks registers lifecycle callbacks for observing runs.
func WithHooks(hooks LifecycleHooks) Option {
	return func(m *StateMachine) {
		m.hooks = hooks
	}
}

// WithLogger sets a structured logger for the machine. By default logs
// are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(m *StateMachine) {
		m.logger = logger
	}
}

// WithMaxSteps overrides the per-run transition cap (default
// DefaultMaxSteps). Values below one are ignored.
func WithMaxSteps(n int) Option {
	return func(m *StateMachine) {
		if n > 0 {
			m.maxSteps = n
		}
	}
}

// New creates an empty state machine. The name identifies the machine in
// logs, results and collection output.
func New(name string, opts ...Option) *StateMachine {
	m := &StateMachine{
		name:        name,
		states:      make(map[string]*State),
		transitions: make(map[string]*Transition),
		maxSteps:    DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	m.logger = m.logger.With("machine", name)
	return m
}

// Name returns the machine's name.
func (m *StateMachine) Name() string {
	return m.name
}

// AddTransition defines the machine's single entry transition: the first
// action executed by a run, before any state exists. Calling it a second
// time is rejected with ErrStartAlreadySet.
func (m *StateMachine) AddTransition(name string, action ActionFunc, opts ...TransitionOption) (*Transition, error) {
	if m.start != nil {
		return nil, ErrStartAlreadySet
	}
	if action == nil {
		return nil, fmt.Errorf("transition %q: action must not be nil", name)
	}
	t := &Transition{
		name:    name,
		action:  action,
		machine: m,
	}
	for _, opt := range opts {
		opt(t)
	}
	if err := m.registerTransition(t); err != nil {
		return nil, err
	}
	m.start = t
	return t, nil
}

// NewState registers a state with the given ordered assertions without
// linking it anywhere. Useful when several transitions share a target;
// bind it later with Transition.SetTargetState.
func (m *StateMachine) NewState(name string, assertions ...AssertionFunc) (*State, error) {
	s := &State{
		name:       name,
		assertions: assertions,
		machine:    m,
	}
	if err := m.registerState(s); err != nil {
		return nil, err
	}
	return s, nil
}

// AddState registers a new state and binds it as the target of incoming.
// It is the non-fluent spelling of Transition.NewTargetState.
func (m *StateMachine) AddState(incoming *Transition, name string, assertions ...AssertionFunc) (*State, error) {
	if incoming == nil {
		return nil, fmt.Errorf("state %q: incoming transition must not be nil", name)
	}
	if incoming.machine != m {
		return nil, fmt.Errorf("state %q: incoming transition belongs to a different machine", name)
	}
	return incoming.NewTargetState(name, assertions...)
}

// Start returns the machine's entry transition, or nil if none is defined.
func (m *StateMachine) Start() *Transition {
	return m.start
}

// States returns every registered state in insertion order.
func (m *StateMachine) States() []*State {
	out := make([]*State, len(m.stateOrder))
	copy(out, m.stateOrder)
	return out
}

// Transitions returns every registered transition in insertion order,
// including the start transition.
func (m *StateMachine) Transitions() []*Transition {
	out := make([]*Transition, len(m.transitionOrder))
	copy(out, m.transitionOrder)
	return out
}

func (m *StateMachine) registerState(s *State) error {
	if err := m.checkName(s.name, ErrDuplicateStateName); err != nil {
		return err
	}
	m.states[s.name] = s
	m.stateOrder = append(m.stateOrder, s)
	return nil
}

func (m *StateMachine) registerTransition(t *Transition) error {
	if err := m.checkName(t.name, ErrDuplicateTransitionName); err != nil {
		return err
	}
	m.transitions[t.name] = t
	m.transitionOrder = append(m.transitionOrder, t)
	return nil
}

// checkName enforces machine-wide uniqueness across both kinds of node.
// Both states and transitions become identifiers in the exported graph,
// so a state may not reuse a transition's name either.
func (m *StateMachine) checkName(name string, kindErr error) error {
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", kindErr)
	}
	if _, ok := m.states[name]; ok {
		return fmt.Errorf("%w: %q", kindErr, name)
	}
	if _, ok := m.transitions[name]; ok {
		return fmt.Errorf("%w: %q", kindErr, name)
	}
	return nil
}

// Step records one transition fired during a run and the state it led to.
type Step struct {
	Transition string
	State      string
}

// RunResult captures the outcome of one walk. On failure Err is non-nil
// and Steps holds the path up to and including the failing step.
type RunResult struct {
	ID            string
	Machine       string
	StartedAt     time.Time
	Duration      time.Duration
	Steps         []Step
	TerminalState string
	Err           error

	store *Store
}

// Failed reports whether the run ended with a failure.
func (r *RunResult) Failed() bool {
	return r.Err != nil
}

// Store exposes the run's store for inspection after the walk ended.
func (r *RunResult) Store() *Store {
	return r.store
}

// Run walks the machine once: it provisions a driver, builds a fresh
// Runner and Store, executes the start transition's action, checks the
// target state's assertions, then repeatedly selects the first outgoing
// transition whose guard holds, in insertion order, until no transition
// is enabled.
//
// The walk ends successfully at the first state with no enabled outgoing
// transition. Any action error, assertion failure, exceeded step cap or
// context cancellation aborts it; the returned RunResult records the path
// taken either way, and its error matches the result's Err field.
func (m *StateMachine) Run(ctx context.Context) (*RunResult, error) {
	if m.start == nil {
		return nil, ErrNoStartTransition
	}
	if m.provider == nil {
		return nil, fmt.Errorf("%w: no driver provider configured", ErrNoDriver)
	}

	driver, err := m.provider.Provide(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDriver, err)
	}
	defer func() {
		if relErr := m.provider.Release(driver); relErr != nil {
			m.logger.Warn("driver release failed", "error", relErr)
		}
	}()

	res := &RunResult{
		ID:        uuid.NewString(),
		Machine:   m.name,
		StartedAt: time.Now(),
		store:     NewStore(),
	}
	runner := newRunner(driver, res.store)
	logger := m.logger.With("run_id", res.ID)

	logger.Info("run started")
	m.emitRunStart(ctx, res)

	err = m.walk(ctx, runner, res, logger)
	res.Duration = time.Since(res.StartedAt)
	res.Err = err

	if err != nil {
		logger.Error("run failed", "error", err, "steps", len(res.Steps))
	} else {
		logger.Info("run completed", "terminal_state", res.TerminalState, "steps", len(res.Steps))
	}
	m.emitRunEnd(ctx, res)
	return res, err
}

// walk executes the traversal loop. Transition selection is
// first-match-in-insertion-order: authors wanting mutually exclusive
// branches must write mutually exclusive guards.
func (m *StateMachine) walk(ctx context.Context, runner *Runner, res *RunResult, logger *slog.Logger) error {
	current := m.start
	for step := 1; ; step++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if step > m.maxSteps {
			return fmt.Errorf("%w: cap %d reached at transition %q", ErrMaxStepsExceeded, m.maxSteps, current.name)
		}
		if current.target == nil {
			return fmt.Errorf("%w: %q", ErrNoTargetState, current.name)
		}

		logger.Debug("firing transition", "transition", current.name, "step", step)
		m.emitTransition(ctx, res, current, step)
		if err := current.action(runner); err != nil {
			return &ActionError{Transition: current.name, Err: err}
		}

		state := current.target
		res.Steps = append(res.Steps, Step{Transition: current.name, State: state.name})

		logger.Debug("entering state", "state", state.name, "step", step)
		m.emitStateEnter(ctx, res, state, step)
		if aerr := state.runAssertions(runner); aerr != nil {
			m.emitAssertionFailure(ctx, res, aerr)
			return aerr
		}

		var next *Transition
		for _, t := range state.outgoing {
			if t.enabled(runner) {
				next = t
				break
			}
		}
		if next == nil {
			res.TerminalState = state.name
			return nil
		}
		current = next
	}
}

func (m *StateMachine) emitRunStart(ctx context.Context, res *RunResult) {
	if m.hooks.OnRunStart == nil {
		return
	}
	m.hooks.OnRunStart(ctx, &RunEvent{
		Timestamp: time.Now(),
		RunID:     res.ID,
		Machine:   m.name,
	})
}

func (m *StateMachine) emitTransition(ctx context.Context, res *RunResult, t *Transition, step int) {
	if m.hooks.OnTransition == nil {
		return
	}
	m.hooks.OnTransition(ctx, &TransitionEvent{
		Timestamp:  time.Now(),
		RunID:      res.ID,
		Transition: t.name,
		Step:       step,
	})
}

func (m *StateMachine) emitStateEnter(ctx context.Context, res *RunResult, s *State, step int) {
	if m.hooks.OnStateEnter == nil {
		return
	}
	m.hooks.OnStateEnter(ctx, &StateEvent{
		Timestamp: time.Now(),
		RunID:     res.ID,
		State:     s.name,
		Step:      step,
	})
}

func (m *StateMachine) emitAssertionFailure(ctx context.Context, res *RunResult, aerr *AssertionError) {
	if m.hooks.OnAssertionFailure == nil {
		return
	}
	m.hooks.OnAssertionFailure(ctx, &AssertionEvent{
		Timestamp: time.Now(),
		RunID:     res.ID,
		State:     aerr.State,
		Index:     aerr.Index,
		Err:       aerr.Err,
	})
}

func (m *StateMachine) emitRunEnd(ctx context.Context, res *RunResult) {
	if m.hooks.OnRunEnd == nil {
		return
	}
	m.hooks.OnRunEnd(ctx, &RunEndEvent{
		Timestamp: time.Now(),
		RunID:     res.ID,
		Machine:   m.name,
		Steps:     len(res.Steps),
		Duration:  res.Duration,
		Err:       res.Err,
	})
}
