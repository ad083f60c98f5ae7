package statemachines

import "context"

// Driver is the opaque browser-driving handle threaded through a run. The
// engine never inspects it; it only hands it to user-supplied actions,
// guards and assertions via Runner.Driver. A real implementation is
// typically a browser-automation page object (see pkg/drivers/browser),
// but tests can pass anything.
type Driver = any

// DriverProvider supplies a driver handle for each run. Implementations
// own whatever session lifecycle the underlying automation tool needs;
// the engine only calls Provide before the walk and Release after it.
type DriverProvider interface {
	// Provide returns a fresh driver handle for one run.
	Provide(ctx context.Context) (Driver, error)

	// Release disposes of a handle previously returned by Provide.
	Release(driver Driver) error
}

// StaticDriverProvider returns a provider that hands out the same driver
// handle for every run and never disposes of it. Useful for tests and for
// embedding the engine against an externally managed session.
func StaticDriverProvider(driver Driver) DriverProvider {
	return staticProvider{driver: driver}
}

type staticProvider struct {
	driver Driver
}

func (p staticProvider) Provide(ctx context.Context) (Driver, error) { return p.driver, nil }

func (p staticProvider) Release(driver Driver) error { return nil }
