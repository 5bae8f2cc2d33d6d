package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"getjwt/internal/fetcher"
)

func TestExitCode(t *testing.T) {
	base := errors.New("boom")
	cfgErr := &fetcher.ConfigError{Problems: []fetcher.Problem{{Option: "agent", Message: "-a <user_agent> is undefined!"}}}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, exitOK},
		{"runtime failure", base, exitRuntime},
		{"wrapped runtime failure", fmt.Errorf("navigate: %w", base), exitRuntime},
		{"option problems", cfgErr, exitConfig},
		{"usage", usage(base), exitConfig},
		{"wrapped usage", fmt.Errorf("flags: %w", usage(base)), exitConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestUsageError(t *testing.T) {
	base := errors.New("unknown flag: --bogus")
	err := usage(base)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "unknown flag: --bogus", err.Error())
	assert.NoError(t, usage(nil))
}
