package fetcher

import (
	"context"
	"fmt"
	"time"

	"getjwt/internal/browser"
	"getjwt/internal/metrics"

	"go.uber.org/zap"
)

const (
	loginURL = "https://app.pluralsight.com/id?"

	usernameInput = "#Username"
	passwordInput = "#Password"
	loginButton   = "#login"
	searchBar     = "#prism-search-input"

	NavigationTimeout      = 30 * time.Second
	DefaultSelectorTimeout = 30 * time.Second
	// CommandTimeout bounds page steps that do not wait on the DOM.
	CommandTimeout = 30 * time.Second
	KeystrokeDelay         = 50 * time.Millisecond
)

// Fetcher drives a browser through the login page and harvests its cookies.
type Fetcher struct {
	launcher browser.Launcher
	logger   *zap.Logger
}

func New(launcher browser.Launcher, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{launcher: launcher, logger: logger.Named("fetcher")}
}

// Fetch runs the page sequence for cfg and hands the harvested cookies to emit
// while the browser is still open. The browser is closed on every return path.
func (f *Fetcher) Fetch(ctx context.Context, cfg Config, emit func([]browser.Cookie) error) (err error) {
	mode := "anonymous"
	if cfg.LoginRequired() {
		mode = "login"
	}
	log := f.logger.With(zap.String("mode", mode))
	step := func(name string, timeout time.Duration, fn func(context.Context) error) error {
		return f.step(ctx, log, mode, name, timeout, fn)
	}

	var b browser.Browser
	// No timeout on launch: the drivers tie the browser process to this ctx.
	err = step("launch", 0, func(ctx context.Context) error {
		var err error
		b, err = f.launcher.Launch(ctx, browser.LaunchOptions{
			ExecPath:  cfg.ChromePath,
			Headless:  cfg.Headless,
			RemoteURL: cfg.RemoteURL,
			NoSandbox: cfg.NoSandbox,
		})
		return err
	})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := b.Close(); closeErr != nil {
			log.Warn("failed to close browser", zap.Error(closeErr))
			if err == nil {
				err = fmt.Errorf("close browser: %w", closeErr)
			}
		}
	}()

	var page browser.Page
	if err = step("new_page", CommandTimeout, func(ctx context.Context) error {
		var err error
		page, err = b.NewPage(ctx)
		return err
	}); err != nil {
		return err
	}

	if err = step("set_user_agent", CommandTimeout, func(ctx context.Context) error {
		return page.SetUserAgent(ctx, cfg.UserAgent)
	}); err != nil {
		return err
	}

	if err = step("navigate", NavigationTimeout, func(ctx context.Context) error {
		return page.Navigate(ctx, loginURL)
	}); err != nil {
		return err
	}

	if cfg.Login != nil {
		log.Info("logging in", zap.String("username", cfg.Login.Username))
		if err = step("wait_login_form", cfg.SelectorTimeout, func(ctx context.Context) error {
			return page.WaitForSelector(ctx, loginButton)
		}); err != nil {
			return err
		}
		if err = step("type_username", cfg.SelectorTimeout, func(ctx context.Context) error {
			return page.Type(ctx, usernameInput, cfg.Login.Username, KeystrokeDelay)
		}); err != nil {
			return err
		}
		if err = step("type_password", cfg.SelectorTimeout, func(ctx context.Context) error {
			return page.Type(ctx, passwordInput, cfg.Login.Password, KeystrokeDelay)
		}); err != nil {
			return err
		}
		if err = step("submit_login", cfg.SelectorTimeout, func(ctx context.Context) error {
			return page.Click(ctx, loginButton)
		}); err != nil {
			return err
		}
	}

	if err = step("wait_landing", cfg.SelectorTimeout, func(ctx context.Context) error {
		return page.WaitForSelector(ctx, searchBar)
	}); err != nil {
		return err
	}

	var cookies []browser.Cookie
	if err = step("harvest_cookies", CommandTimeout, func(ctx context.Context) error {
		var err error
		cookies, err = page.Cookies(ctx)
		return err
	}); err != nil {
		return err
	}
	if cookies == nil {
		cookies = []browser.Cookie{}
	}
	metrics.RecordCookiesHarvested(len(cookies))
	log.Info("cookies harvested", zap.Int("count", len(cookies)))

	for _, tok := range InspectTokens(cookies) {
		fields := []zap.Field{zap.String("cookie", tok.Cookie)}
		if tok.HasExpiry {
			metrics.RecordTokenExpiry(tok.Cookie, tok.ExpiresAt)
			fields = append(fields,
				zap.Time("expires_at", tok.ExpiresAt),
				zap.Duration("expires_in", time.Until(tok.ExpiresAt).Round(time.Second)),
			)
		}
		log.Info("jwt cookie found", fields...)
	}

	return emit(cookies)
}

// step runs fn under an optional timeout, logging and recording its outcome.
func (f *Fetcher) step(ctx context.Context, log *zap.Logger, mode, name string, timeout time.Duration, fn func(context.Context) error) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	metrics.RecordStepLatency(name, mode, elapsed)

	if err != nil {
		errorType := browser.ErrorType(err)
		metrics.RecordStepError(name, errorType)
		log.Debug("step failed", zap.String("step", name), zap.String("error_type", errorType), zap.Duration("elapsed", elapsed))
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Debug("step done", zap.String("step", name), zap.Duration("elapsed", elapsed))
	return nil
}
