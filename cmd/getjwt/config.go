package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"getjwt/internal/fetcher"
)

// envDefaults are flag defaults taken from the environment.
type envDefaults struct {
	ChromePath  string
	LogLevel    string
	MetricsFile string
}

// loadEnv reads defaults from the environment, falling back to a .env file in
// the working directory. Variables already set are never overridden.
func loadEnv(dotenvPath string) envDefaults {
	// A missing .env file is fine; values then come from the environment only.
	_ = godotenv.Load(dotenvPath)

	env := envDefaults{
		ChromePath:  strings.TrimSpace(os.Getenv("GETJWT_CHROME_PATH")),
		LogLevel:    strings.TrimSpace(os.Getenv("GETJWT_LOG_LEVEL")),
		MetricsFile: strings.TrimSpace(os.Getenv("GETJWT_METRICS_FILE")),
	}
	if env.ChromePath == "" {
		env.ChromePath = fetcher.DefaultChromePath
	}
	if env.LogLevel == "" {
		env.LogLevel = "warn"
	}
	return env
}
