package browser

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrLaunch        = errors.New("browser launch failed")
	ErrTimeout       = errors.New("browser operation timed out")
	ErrSessionClosed = errors.New("browser session closed")
)

// OpError wraps a driver failure with the operation and selector it hit.
type OpError struct {
	Op       string
	Selector string
	Err      error
}

func (e *OpError) Error() string {
	if e.Selector != "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Selector, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// wrapOp attaches op context to err and tags deadline expiry with ErrTimeout.
func wrapOp(op, selector string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrTimeout) {
		err = fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return &OpError{Op: op, Selector: selector, Err: err}
}

func launchError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &OpError{Op: "launch", Err: fmt.Errorf("%w: %w: %w", ErrLaunch, ErrTimeout, err)}
	}
	return &OpError{Op: "launch", Err: fmt.Errorf("%w: %w", ErrLaunch, err)}
}

// ErrorType classifies err into a short label for metrics.
func ErrorType(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrLaunch):
		return "launch_error"
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "timeout_error"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "protocol_error"
	}
}
