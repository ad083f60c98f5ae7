/*
Package browser provides a Playwright-backed DriverProvider.

NewProvider starts a Playwright instance and launches a browser; each run
gets its own browser context and page, so concurrent or consecutive runs
never share cookies or storage. Actions and assertions retrieve the typed
page from the Runner with Page:

	func openLogin(r *statemachines.Runner) error {
		page, err := browser.Page(r.Driver())
		if err != nil {
			return err
		}
		_, err = page.Goto("https://example.test/login")
		return err
	}
*/
package browser
