package browser

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/playwright-community/playwright-go"

	statemachines "github.com/apfeiffer1/selenium-state-machines"
)

// Default provider settings.
const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
)

// Options configure the launched browser.
type Options struct {
	// Headless runs the browser without a visible window. Defaults to true.
	Headless bool
	// BrowserName selects the engine: "chromium" (default), "firefox" or
	// "webkit".
	BrowserName string
	// ViewportWidth/ViewportHeight set the page viewport.
	ViewportWidth  int
	ViewportHeight int
}

// Option mutates Options.
type Option func(*Options)

// WithHeadful launches a visible browser window, useful when debugging a
// flaky flow locally.
func WithHeadful() Option {
	return func(o *Options) {
		o.Headless = false
	}
}

// WithBrowser selects the browser engine by name.
func WithBrowser(name string) Option {
	return func(o *Options) {
		o.BrowserName = name
	}
}

// WithViewport sets the page viewport size.
func WithViewport(width, height int) Option {
	return func(o *Options) {
		o.ViewportWidth = width
		o.ViewportHeight = height
	}
}

// Provider launches a real browser through Playwright and hands out one
// isolated page per run. It implements statemachines.DriverProvider.
type Provider struct {
	mu      sync.Mutex
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    Options
	closed  bool
}

// NewProvider installs and starts Playwright, then launches the browser.
// Call Close when the whole suite is done.
func NewProvider(opts ...Option) (*Provider, error) {
	options := Options{
		Headless:       true,
		BrowserName:    "chromium",
		ViewportWidth:  DefaultViewportWidth,
		ViewportHeight: DefaultViewportHeight,
	}
	for _, opt := range opts {
		opt(&options)
	}

	// Discard the installer's output so it does not interleave with test
	// logs.
	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}
	if err := playwright.Install(runOpts); err != nil {
		return nil, fmt.Errorf("failed to install playwright: %w", err)
	}
	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	var browserType playwright.BrowserType
	switch options.BrowserName {
	case "chromium", "":
		browserType = pw.Chromium
	case "firefox":
		browserType = pw.Firefox
	case "webkit":
		browserType = pw.WebKit
	default:
		pw.Stop()
		return nil, fmt.Errorf("unknown browser %q", options.BrowserName)
	}

	b, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: &options.Headless,
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	return &Provider{pw: pw, browser: b, opts: options}, nil
}

// Provide creates a fresh browser context and page for one run.
func (p *Provider) Provide(ctx context.Context) (statemachines.Driver, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, fmt.Errorf("browser provider is closed")
	}

	browserCtx, err := p.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  p.opts.ViewportWidth,
			Height: p.opts.ViewportHeight,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		browserCtx.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return page, nil
}

// Release closes the page's browser context, discarding all run state.
func (p *Provider) Release(driver statemachines.Driver) error {
	page, err := Page(driver)
	if err != nil {
		return err
	}
	if err := page.Context().Close(); err != nil {
		return fmt.Errorf("failed to close browser context: %w", err)
	}
	return nil
}

// Close shuts down the browser and the Playwright instance.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true

	if err := p.browser.Close(); err != nil {
		p.pw.Stop()
		return fmt.Errorf("failed to close browser: %w", err)
	}
	if err := p.pw.Stop(); err != nil {
		return fmt.Errorf("failed to stop playwright: %w", err)
	}
	return nil
}

// Page extracts the typed Playwright page from the opaque driver handle
// carried by a Runner.
func Page(driver statemachines.Driver) (playwright.Page, error) {
	page, ok := driver.(playwright.Page)
	if !ok {
		return nil, fmt.Errorf("driver is %T, not a playwright page", driver)
	}
	return page, nil
}
