package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// ChromeLauncher starts browsers through chromedp.
type ChromeLauncher struct {
	logger *zap.Logger
}

func NewChromeLauncher(logger *zap.Logger) *ChromeLauncher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChromeLauncher{logger: logger.Named("chromedp")}
}

// Launch spawns ExecPath (or attaches to RemoteURL) and starts the browser
// eagerly so a bad executable surfaces here rather than on the first page.
func (l *ChromeLauncher) Launch(ctx context.Context, opts LaunchOptions) (Browser, error) {
	var (
		allocCtx    context.Context
		cancelAlloc context.CancelFunc
	)
	if opts.RemoteURL != "" {
		allocCtx, cancelAlloc = chromedp.NewRemoteAllocator(ctx, opts.RemoteURL)
	} else {
		allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.ExecPath(opts.ExecPath),
			chromedp.Flag("headless", opts.Headless),
			chromedp.Flag("disable-gpu", opts.Headless),
			chromedp.Flag("disable-dev-shm-usage", true),
		)
		if opts.NoSandbox {
			allocOpts = append(allocOpts, chromedp.NoSandbox)
		}
		allocCtx, cancelAlloc = chromedp.NewExecAllocator(ctx, allocOpts...)
	}

	sugar := l.logger.Sugar()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(sugar.Debugf),
		chromedp.WithErrorf(sugar.Debugf),
	)

	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, launchError(err)
	}

	l.logger.Debug("browser started",
		zap.String("exec_path", opts.ExecPath),
		zap.Bool("headless", opts.Headless),
		zap.String("remote_url", opts.RemoteURL),
	)

	return &chromeBrowser{
		ctx:           browserCtx,
		cancelBrowser: cancelBrowser,
		cancelAlloc:   cancelAlloc,
		remote:        opts.RemoteURL != "",
		logger:        l.logger,
	}, nil
}

type chromeBrowser struct {
	ctx           context.Context
	cancelBrowser context.CancelFunc
	cancelAlloc   context.CancelFunc
	// remote browsers belong to someone else; Close only drops our tabs.
	remote bool
	logger *zap.Logger
	pages  []*chromePage
	closed bool
}

func (b *chromeBrowser) NewPage(ctx context.Context) (Page, error) {
	if b.closed {
		return nil, ErrSessionClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, wrapOp("new page", "", err)
	}
	// Launch already opened a tab on b.ctx; hand that out first.
	if len(b.pages) == 0 {
		pg := &chromePage{ctx: b.ctx, cancel: func() {}}
		b.pages = append(b.pages, pg)
		return pg, nil
	}
	pageCtx, cancel := chromedp.NewContext(b.ctx)
	// The first Run binds the target's lifetime to its context, so it must
	// get pageCtx itself rather than a derived, shorter-lived one.
	if err := chromedp.Run(pageCtx); err != nil {
		cancel()
		return nil, wrapOp("new page", "", err)
	}
	pg := &chromePage{ctx: pageCtx, cancel: cancel}
	b.pages = append(b.pages, pg)
	return pg, nil
}

// Close shuts a launched browser down gracefully, then kills the allocator.
// For a remote browser it closes the tabs opened here and disconnects.
func (b *chromeBrowser) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	for _, pg := range b.pages {
		pg.cancel()
	}
	var err error
	if b.remote {
		// Leave the attached browser running; close only the tab from Launch.
		err = chromedp.Run(b.ctx, page.Close())
	} else {
		err = chromedp.Cancel(b.ctx)
	}
	b.cancelBrowser()
	b.cancelAlloc()
	if err != nil {
		return wrapOp("close", "", err)
	}
	b.logger.Debug("browser closed", zap.Int("pages", len(b.pages)), zap.Bool("remote", b.remote))
	return nil
}

type chromePage struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// run executes actions on the page target, bounded by ctx's deadline and cancellation.
func (p *chromePage) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := boundTo(p.ctx, ctx)
	defer cancel()

	err := chromedp.Run(runCtx, actions...)
	if err != nil && ctx.Err() != nil {
		return fmt.Errorf("%w: %w", ctx.Err(), err)
	}
	return err
}

// boundTo derives a context from target that keeps target's values but ends
// with ctx's deadline or cancellation as well as its own.
func boundTo(target, ctx context.Context) (context.Context, context.CancelFunc) {
	runCtx, cancel := context.WithCancel(target)
	cancelDeadline := context.CancelFunc(func() {})
	if deadline, ok := ctx.Deadline(); ok {
		runCtx, cancelDeadline = context.WithDeadline(runCtx, deadline)
	}
	stop := context.AfterFunc(ctx, cancel)
	return runCtx, func() {
		stop()
		cancelDeadline()
		cancel()
	}
}

func (p *chromePage) SetUserAgent(ctx context.Context, userAgent string) error {
	return wrapOp("set user agent", "", p.run(ctx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetUserAgentOverride(userAgent).Do(ctx)
		}),
	))
}

func (p *chromePage) Navigate(ctx context.Context, url string) error {
	return wrapOp("navigate", "", p.run(ctx, navigateDOMContentLoaded(url)))
}

// navigateDOMContentLoaded issues Page.navigate and returns on the first
// DOMContentLoaded event, without waiting for the full load event.
func navigateDOMContentLoaded(url string) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		loaded := make(chan struct{}, 1)
		listenCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		chromedp.ListenTarget(listenCtx, func(ev interface{}) {
			if _, ok := ev.(*page.EventDomContentEventFired); ok {
				select {
				case loaded <- struct{}{}:
				default:
				}
			}
		})

		var res page.NavigateReturns
		if err := cdp.Execute(ctx, page.CommandNavigate, page.Navigate(url), &res); err != nil {
			return err
		}
		if res.ErrorText != "" {
			return fmt.Errorf("page load error %s", res.ErrorText)
		}

		select {
		case <-loaded:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *chromePage) WaitForSelector(ctx context.Context, selector string) error {
	return wrapOp("wait for selector", selector, p.run(ctx, chromedp.WaitReady(selector, chromedp.ByQuery)))
}

func (p *chromePage) Type(ctx context.Context, selector, text string, delay time.Duration) error {
	actions := chromedp.Tasks{chromedp.Focus(selector, chromedp.ByQuery)}
	for i, r := range []rune(text) {
		if i > 0 {
			actions = append(actions, chromedp.Sleep(delay))
		}
		actions = append(actions, chromedp.KeyEvent(string(r)))
	}
	return wrapOp("type", selector, p.run(ctx, actions))
}

func (p *chromePage) Click(ctx context.Context, selector string) error {
	return wrapOp("click", selector, p.run(ctx, chromedp.Click(selector, chromedp.ByQuery)))
}

func (p *chromePage) Cookies(ctx context.Context) ([]Cookie, error) {
	var cookies []*network.Cookie
	err := p.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		cookies, err = network.GetCookies().Do(ctx)
		if err != nil {
			return fmt.Errorf("failed to get cookies: %w", err)
		}
		return nil
	}))
	if err != nil {
		return nil, wrapOp("cookies", "", err)
	}
	return fromNetworkCookies(cookies), nil
}
