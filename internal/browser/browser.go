package browser

import (
	"context"
	"time"
)

//go:generate mockgen -source=browser.go -destination=mocks/mock_browser.go -package=mocks

// LaunchOptions configures how a browser session is started.
type LaunchOptions struct {
	// ExecPath is the Chromium executable to spawn.
	ExecPath string
	Headless bool
	// RemoteURL attaches to an already running browser instead of spawning ExecPath.
	RemoteURL string
	NoSandbox bool
}

// Launcher starts browser sessions.
type Launcher interface {
	Launch(ctx context.Context, opts LaunchOptions) (Browser, error)
}

// Browser is a running browser session. Close releases the underlying process.
type Browser interface {
	NewPage(ctx context.Context) (Page, error)
	Close() error
}

// Page is a single document context inside a Browser.
type Page interface {
	SetUserAgent(ctx context.Context, userAgent string) error
	// Navigate loads url and returns once DOMContentLoaded has fired.
	Navigate(ctx context.Context, url string) error
	// WaitForSelector blocks until an element matching selector is in the DOM.
	WaitForSelector(ctx context.Context, selector string) error
	// Type sends text to the element one keystroke at a time, pausing delay between keys.
	Type(ctx context.Context, selector, text string, delay time.Duration) error
	Click(ctx context.Context, selector string) error
	Cookies(ctx context.Context) ([]Cookie, error)
}

// sleepCtx waits for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
