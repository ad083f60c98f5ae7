package statemachines

// Runner is the per-run facade handed to every action, guard and
// assertion. It pairs the opaque browser driver handle with the run's
// shared Store, so all three kinds of user function observe the same
// mutations in execution order.
//
// A Runner is constructed once per Run invocation and discarded when the
// walk ends.
type Runner struct {
	driver Driver
	store  *Store
}

func newRunner(driver Driver, store *Store) *Runner {
	return &Runner{driver: driver, store: store}
}

// Driver returns the browser-driving handle for the current run. The same
// handle is returned for the whole run.
func (r *Runner) Driver() Driver {
	return r.driver
}

// Store returns the mutable key/value store shared across the run.
func (r *Runner) Store() *Store {
	return r.store
}
