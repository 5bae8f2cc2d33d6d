package browser

import (
	"context"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// RodLauncher starts browsers through go-rod.
type RodLauncher struct {
	logger *zap.Logger
}

func NewRodLauncher(logger *zap.Logger) *RodLauncher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RodLauncher{logger: logger.Named("rod")}
}

func (l *RodLauncher) Launch(ctx context.Context, opts LaunchOptions) (Browser, error) {
	var (
		controlURL string
		lnch       *launcher.Launcher
		err        error
	)
	if opts.RemoteURL != "" {
		controlURL, err = launcher.ResolveURL(opts.RemoteURL)
		if err != nil {
			return nil, launchError(err)
		}
	} else {
		lnch = launcher.New().
			Context(ctx).
			Bin(opts.ExecPath).
			Headless(opts.Headless).
			NoSandbox(opts.NoSandbox)
		controlURL, err = lnch.Launch()
		if err != nil {
			lnch.Kill()
			return nil, launchError(err)
		}
	}

	connCtx, disconnect := context.WithCancel(ctx)
	b := rod.New().Context(connCtx).ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		disconnect()
		if lnch != nil {
			lnch.Kill()
		}
		return nil, launchError(err)
	}

	l.logger.Debug("browser started",
		zap.String("exec_path", opts.ExecPath),
		zap.Bool("headless", opts.Headless),
		zap.String("control_url", controlURL),
	)
	return &rodBrowser{browser: b, launcher: lnch, disconnect: disconnect, logger: l.logger}, nil
}

type rodBrowser struct {
	browser *rod.Browser
	// launcher is nil when attached through RemoteURL.
	launcher   *launcher.Launcher
	disconnect context.CancelFunc
	logger     *zap.Logger
	pages      []*rod.Page
	closed     bool
}

func (b *rodBrowser) NewPage(ctx context.Context) (Page, error) {
	if b.closed {
		return nil, ErrSessionClosed
	}
	p, err := b.browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, wrapOp("new page", "", err)
	}
	// Detach from the call's context; each method rebinds its own.
	p = p.Context(context.Background())
	b.pages = append(b.pages, p)
	return &rodPage{page: p}, nil
}

// Close closes a launched browser and removes the launcher's temporary
// profile. A remote browser keeps running; only the pages opened here close.
func (b *rodBrowser) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	defer b.disconnect()

	var err error
	if b.launcher == nil {
		for _, p := range b.pages {
			if cerr := p.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
	} else {
		err = b.browser.Close()
		b.launcher.Kill()
		b.launcher.Cleanup()
	}
	if err != nil {
		return wrapOp("close", "", err)
	}
	b.logger.Debug("browser closed", zap.Int("pages", len(b.pages)), zap.Bool("remote", b.launcher == nil))
	return nil
}

type rodPage struct {
	page *rod.Page
}

func (p *rodPage) SetUserAgent(ctx context.Context, userAgent string) error {
	err := p.page.Context(ctx).SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: userAgent})
	return wrapOp("set user agent", "", err)
}

func (p *rodPage) Navigate(ctx context.Context, url string) error {
	pg := p.page.Context(ctx)
	wait := pg.WaitNavigation(proto.PageLifecycleEventNameDOMContentLoaded)
	if err := pg.Navigate(url); err != nil {
		return wrapOp("navigate", "", err)
	}
	return wrapOp("navigate", "", waitUntil(ctx, wait))
}

// waitUntil runs a blocking wait that has no error of its own and reports
// whether ctx ended it.
func waitUntil(ctx context.Context, wait func()) error {
	wait()
	return ctx.Err()
}

func (p *rodPage) WaitForSelector(ctx context.Context, selector string) error {
	_, err := p.page.Context(ctx).Element(selector)
	return wrapOp("wait for selector", selector, err)
}

func (p *rodPage) Type(ctx context.Context, selector, text string, delay time.Duration) error {
	el, err := p.page.Context(ctx).Element(selector)
	if err != nil {
		return wrapOp("type", selector, err)
	}
	for i, r := range []rune(text) {
		if i > 0 {
			if err := sleepCtx(ctx, delay); err != nil {
				return wrapOp("type", selector, err)
			}
		}
		if err := typeRune(el, r); err != nil {
			return wrapOp("type", selector, err)
		}
	}
	return nil
}

func (p *rodPage) Click(ctx context.Context, selector string) error {
	el, err := p.page.Context(ctx).Element(selector)
	if err != nil {
		return wrapOp("click", selector, err)
	}
	return wrapOp("click", selector, el.Click(proto.InputMouseButtonLeft, 1))
}

func (p *rodPage) Cookies(ctx context.Context) ([]Cookie, error) {
	cookies, err := p.page.Context(ctx).Cookies(nil)
	if err != nil {
		return nil, wrapOp("cookies", "", err)
	}
	return fromProtoCookies(cookies), nil
}

// typeRune presses the key for r. Runes off the US keyboard map have no key
// event, so they are inserted as text.
func typeRune(el *rod.Element, r rune) error {
	if !hasKeyEvent(r) {
		return el.Input(string(r))
	}
	return el.Type(input.Key(r))
}

func hasKeyEvent(r rune) bool {
	return r >= ' ' && r <= '~'
}
