package statemachines

import (
	"context"
	"fmt"
)

// Collection groups several state machines so a suite can be executed
// with one call. Machines run sequentially in the order they were added;
// there is no parallel execution at this layer.
type Collection struct {
	machines []*StateMachine
}

// NewCollection creates a collection holding the given machines.
func NewCollection(machines ...*StateMachine) *Collection {
	c := &Collection{}
	c.machines = append(c.machines, machines...)
	return c
}

// Add appends a machine to the collection.
func (c *Collection) Add(m *StateMachine) {
	c.machines = append(c.machines, m)
}

// Machines returns the collection's machines in execution order.
func (c *Collection) Machines() []*StateMachine {
	out := make([]*StateMachine, len(c.machines))
	copy(out, c.machines)
	return out
}

// Run executes every machine once and collects the results. All machines
// run even if earlier ones fail; the returned error is the first failure
// encountered, wrapped with the failing machine's name, so a suite can
// both inspect every result and treat any failure as overall failure.
func (c *Collection) Run(ctx context.Context) ([]*RunResult, error) {
	results := make([]*RunResult, 0, len(c.machines))
	var firstErr error
	for _, m := range c.machines {
		res, err := m.Run(ctx)
		if res != nil {
			results = append(results, res)
		}
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("machine %q: %w", m.Name(), err)
		}
		if ctx.Err() != nil {
			break
		}
	}
	return results, firstErr
}
