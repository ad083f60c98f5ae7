package statemachines_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	statemachines "github.com/apfeiffer1/selenium-state-machines"
)

func buildLinearMachine(name string, fail bool) *statemachines.StateMachine {
	m := statemachines.New(name,
		statemachines.WithDriverProvider(statemachines.StaticDriverProvider(nil)))
	start, _ := m.AddTransition(name+"_open", func(r *statemachines.Runner) error { return nil })
	start.NewTargetState(name+"_done", func(r *statemachines.Runner) error {
		if fail {
			return errors.New("broken expectation")
		}
		return nil
	})
	return m
}

func TestCollection_RunsAllMachinesInOrder(t *testing.T) {
	c := statemachines.NewCollection(
		buildLinearMachine("signup", false),
		buildLinearMachine("login", false),
	)
	c.Add(buildLinearMachine("checkout", false))

	results, err := c.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "signup", results[0].Machine)
	assert.Equal(t, "login", results[1].Machine)
	assert.Equal(t, "checkout", results[2].Machine)
}

func TestCollection_ContinuesPastFailures(t *testing.T) {
	c := statemachines.NewCollection(
		buildLinearMachine("good", false),
		buildLinearMachine("bad", true),
		buildLinearMachine("also_good", false),
	)

	results, err := c.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"bad"`)

	var aerr *statemachines.AssertionError
	assert.ErrorAs(t, err, &aerr)

	// Every machine still ran and reported a result.
	require.Len(t, results, 3)
	assert.False(t, results[0].Failed())
	assert.True(t, results[1].Failed())
	assert.False(t, results[2].Failed())
}

func TestCollection_Empty(t *testing.T) {
	results, err := statemachines.NewCollection().Run(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, results)
}
