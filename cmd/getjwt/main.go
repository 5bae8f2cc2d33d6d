package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"getjwt/internal/browser"
	"getjwt/internal/fetcher"
	"getjwt/internal/metrics"
)

// newLauncherFn allows tests to stub the browser driver.
var newLauncherFn = newLauncher

func newLauncher(driver string, logger *zap.Logger) (browser.Launcher, error) {
	switch driver {
	case "chromedp":
		return browser.NewChromeLauncher(logger), nil
	case "rod":
		return browser.NewRodLauncher(logger), nil
	default:
		return nil, fmt.Errorf("unknown driver %q (want chromedp or rod)", driver)
	}
}

type cliFlags struct {
	opts            fetcher.Options
	driver          string
	remoteURL       string
	noSandbox       bool
	selectorTimeout time.Duration
	logLevel        string
	metricsFile     string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, loadEnv(".env"))
	stop()
	os.Exit(code)
}

// run executes the command and returns the process exit code. Configuration
// errors go to stdout with an [ERROR] prefix; everything else goes to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, env envDefaults) int {
	cmd := newRootCmd(stdout, stderr, env)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var cfgErr *fetcher.ConfigError
	if errors.As(err, &cfgErr) {
		for _, p := range cfgErr.Problems {
			fmt.Fprintf(stdout, "[ERROR] %s\n", p.Message)
		}
	} else {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return exitCode(err)
}

func newRootCmd(stdout, stderr io.Writer, env envDefaults) *cobra.Command {
	f := &cliFlags{}

	cmd := &cobra.Command{
		Use:   "getjwt -a <user-agent> [-u <username>] [-p <password>] [-c <path>]",
		Short: "Fetch Pluralsight session cookies through a real browser",
		Long: `getjwt opens app.pluralsight.com in Chromium and prints the cookie set,
including the session JWT, as a JSON array on stdout.

Without credentials the page is visited anonymously in a headless browser.
With -u and -p the browser window is shown and the login form is filled in.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchCookies(cmd.Context(), f, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usage(err)
	})

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&f.opts.Agent, "agent", "a", "", "browser user agent")
	flags.StringVarP(&f.opts.Username, "username", "u", "", "optional, username for log-in")
	flags.StringVarP(&f.opts.Password, "password", "p", "", "optional, password for log-in")
	flags.StringVarP(&f.opts.ChromePath, "chromepath", "c", env.ChromePath, "optional, path to chrome/chromium binary")
	flags.StringVar(&f.driver, "driver", "chromedp", "browser driver: chromedp or rod")
	flags.StringVar(&f.remoteURL, "remote-url", "", "attach to a running browser's DevTools endpoint instead of launching one (it is left running)")
	flags.BoolVar(&f.noSandbox, "no-sandbox", false, "launch Chromium with --no-sandbox (containers)")
	flags.DurationVar(&f.selectorTimeout, "selector-timeout", fetcher.DefaultSelectorTimeout, "limit for each page element wait")
	flags.StringVar(&f.logLevel, "log-level", env.LogLevel, "diagnostics level on stderr (debug, info, warn, error)")
	flags.StringVar(&f.metricsFile, "metrics-file", env.MetricsFile, "write Prometheus metrics to this textfile after the run")

	return cmd
}

func fetchCookies(ctx context.Context, f *cliFlags, stdout, stderr io.Writer) error {
	cfg, err := f.opts.Resolve()
	if err != nil {
		return err
	}
	if f.selectorTimeout <= 0 {
		return usage(fmt.Errorf("--selector-timeout must be positive, got %s", f.selectorTimeout))
	}
	cfg.RemoteURL = f.remoteURL
	cfg.NoSandbox = f.noSandbox
	cfg.SelectorTimeout = f.selectorTimeout

	logger, err := newLogger(f.logLevel, stderr)
	if err != nil {
		return usage(err)
	}
	defer func() { _ = logger.Sync() }()

	launcher, err := newLauncherFn(f.driver, logger)
	if err != nil {
		return usage(err)
	}

	err = fetcher.New(launcher, logger).Fetch(ctx, cfg, func(cookies []browser.Cookie) error {
		data, err := json.Marshal(cookies)
		if err != nil {
			return fmt.Errorf("failed to encode cookies: %w", err)
		}
		if _, err := fmt.Fprintln(stdout, string(data)); err != nil {
			return fmt.Errorf("failed to write cookies: %w", err)
		}
		return nil
	})

	metrics.RecordRun(err == nil, time.Now())
	if f.metricsFile != "" {
		if werr := metrics.WriteTextfile(f.metricsFile); werr != nil {
			logger.Warn("metrics not written", zap.String("path", f.metricsFile), zap.Error(werr))
		}
	}

	return err
}
