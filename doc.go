/*
Package statemachines is a thin orchestration library for browser-driven
end-to-end tests: an application's expected behavior is described as a
graph of states (sets of assertions) connected by transitions (browser
actions), and the engine walks that graph performing actions and checking
assertions.

# Concept

Interactions with the browser are transitions; expectations about the
resulting page are states. A transition may carry a guard predicate that
decides at traversal time whether it is eligible. A run starts with the
machine's single entry transition and keeps taking the first enabled
outgoing transition of the current state, in the order transitions were
added, until no transition is enabled or something fails.

Every action, guard and assertion receives a Runner, which exposes the
opaque browser driver handle for the run together with a shared key/value
Store. The Store is the only thing that survives between steps, so
transitions use it to hand data forward to later assertions.

# Usage

	provider, err := browser.NewProvider()
	if err != nil {
		log.Fatal(err)
	}
	defer provider.Close()

	m := statemachines.New("login-flow",
		statemachines.WithDriverProvider(provider),
	)

	start, _ := m.AddTransition("open_login", openLoginPage)
	login, _ := start.NewTargetState("login_page", loginFormVisible)
	submit, _ := login.AddOutgoingTransition("submit", submitCredentials)
	_, _ = submit.NewTargetState("dashboard", welcomeBannerVisible)

	result, err := m.Run(context.Background())

The graph may contain cycles and shared targets; a guarded self-loop
driven by a Store counter is the usual way to express "retry until the
page settles". A configurable step cap aborts walks whose guards never
become false.

The static graph can be exported to Graphviz DOT or Mermaid with
WriteToFile, and WriteRunToFile colors a run's outcome onto it.

Driving the browser itself is out of scope: the engine only passes the
driver handle through. See pkg/drivers/browser for a Playwright-backed
provider.
*/
package statemachines
