package fetcher

import (
	"strings"
	"time"
)

const DefaultChromePath = "/usr/bin/chromium"

// Options is the raw option record as read from the command line.
// An empty string means the option was not given.
type Options struct {
	Agent      string
	Username   string
	Password   string
	ChromePath string
}

// Credentials is a username/password pair; both fields are always set.
type Credentials struct {
	Username string
	Password string
}

// Config is a validated set of options ready to drive a fetch.
type Config struct {
	UserAgent  string
	ChromePath string
	// Login is nil for an anonymous visit.
	Login *Credentials
	// Headless is true exactly when Login is nil.
	Headless bool

	RemoteURL       string
	NoSandbox       bool
	SelectorTimeout time.Duration
}

func (c Config) LoginRequired() bool {
	return c.Login != nil
}

// Problem is one invalid or missing option.
type Problem struct {
	Option  string
	Message string
}

// ConfigError reports every problem found in an option set.
type ConfigError struct {
	Problems []Problem
}

func (e *ConfigError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Message
	}
	return strings.Join(msgs, "; ")
}

// Resolve validates o. The agent is required, and username and password
// must be given together.
func (o Options) Resolve() (Config, error) {
	var problems []Problem
	if o.Agent == "" {
		problems = append(problems, Problem{Option: "agent", Message: "-a <user_agent> is undefined!"})
	}
	switch {
	case o.Username != "" && o.Password == "":
		problems = append(problems, Problem{Option: "password", Message: "password option is not set!"})
	case o.Username == "" && o.Password != "":
		problems = append(problems, Problem{Option: "username", Message: "username option is not set!"})
	}
	if len(problems) > 0 {
		return Config{}, &ConfigError{Problems: problems}
	}

	cfg := Config{
		UserAgent:       o.Agent,
		ChromePath:      o.ChromePath,
		SelectorTimeout: DefaultSelectorTimeout,
	}
	if cfg.ChromePath == "" {
		cfg.ChromePath = DefaultChromePath
	}
	if o.Username != "" {
		cfg.Login = &Credentials{Username: o.Username, Password: o.Password}
	}
	cfg.Headless = cfg.Login == nil
	return cfg, nil
}
