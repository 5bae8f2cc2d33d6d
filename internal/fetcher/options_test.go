package fetcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsResolve(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		wantOptions []string
		wantLogin   bool
		wantPath    string
	}{
		{
			name:        "missing agent",
			opts:        Options{Username: "alice", Password: "secret"},
			wantOptions: []string{"agent"},
		},
		{
			name:        "missing agent and password",
			opts:        Options{Username: "alice"},
			wantOptions: []string{"agent", "password"},
		},
		{
			name:        "username without password",
			opts:        Options{Agent: "TestAgent/1.0", Username: "alice"},
			wantOptions: []string{"password"},
		},
		{
			name:        "password without username",
			opts:        Options{Agent: "TestAgent/1.0", Password: "secret"},
			wantOptions: []string{"username"},
		},
		{
			name:     "anonymous",
			opts:     Options{Agent: "TestAgent/1.0"},
			wantPath: DefaultChromePath,
		},
		{
			name:      "login with custom chrome",
			opts:      Options{Agent: "TestAgent/1.0", Username: "alice", Password: "secret", ChromePath: "/opt/chrome/chrome"},
			wantLogin: true,
			wantPath:  "/opt/chrome/chrome",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := tt.opts.Resolve()
			if len(tt.wantOptions) > 0 {
				var cfgErr *ConfigError
				require.ErrorAs(t, err, &cfgErr)
				var got []string
				for _, p := range cfgErr.Problems {
					got = append(got, p.Option)
				}
				assert.Equal(t, tt.wantOptions, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.opts.Agent, cfg.UserAgent)
			assert.Equal(t, tt.wantPath, cfg.ChromePath)
			assert.Equal(t, tt.wantLogin, cfg.LoginRequired())
			assert.Equal(t, !tt.wantLogin, cfg.Headless)
			assert.Equal(t, DefaultSelectorTimeout, cfg.SelectorTimeout)
			if tt.wantLogin {
				assert.Equal(t, tt.opts.Username, cfg.Login.Username)
				assert.Equal(t, tt.opts.Password, cfg.Login.Password)
			}
		})
	}
}

func TestConfigErrorMessages(t *testing.T) {
	_, err := Options{Password: "secret"}.Resolve()
	require.Error(t, err)
	assert.Equal(t, "-a <user_agent> is undefined!; username option is not set!", err.Error())

	_, err = Options{Agent: "TestAgent/1.0", Username: "alice"}.Resolve()
	require.Error(t, err)
	assert.Equal(t, "password option is not set!", err.Error())
}
