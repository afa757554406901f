// apps/go-tui/internal/config/config.go
//
// Environment-driven configuration. main loads .env (godotenv) before this
// runs, so values may come from the process environment or a local .env file.
//
// Environment variables:
//   WORDLE_SOURCE_URL=https://www.nytimes.com/svc/wordle/v2
//   WORDLE_FETCH_TIMEOUT=10s
//   LOG_LEVEL=info
//   LOG_FILE=/tmp/wordle.log   ("-" logs to stderr)

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the word source and logging.
type Config struct {
	SourceURL    string        `env:"WORDLE_SOURCE_URL" envDefault:"https://www.nytimes.com/svc/wordle/v2"`
	FetchTimeout time.Duration `env:"WORDLE_FETCH_TIMEOUT" envDefault:"10s"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFile      string        `env:"LOG_FILE"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
