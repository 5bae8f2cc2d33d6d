package main

import (
	"errors"

	"getjwt/internal/fetcher"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// usageError marks a bad command line that is not an option-set problem:
// unknown flags, an unknown driver or an unparsable log level.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usage(err error) error {
	if err == nil {
		return nil
	}
	return usageError{err: err}
}

// exitCode maps the command's result to the process status. Anything that
// is not a configuration or usage problem failed at runtime.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var (
		cfgErr   *fetcher.ConfigError
		usageErr usageError
	)
	if errors.As(err, &cfgErr) || errors.As(err, &usageErr) {
		return exitConfig
	}
	return exitRuntime
}
