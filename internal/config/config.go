// Package config loads and validates configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the configuration of the API server.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is a comma-separated list of allowed cross-origin origins.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`
}

// ClientConfig holds the configuration of the planner CLI.
type ClientConfig struct {
	// APIURL is the base URL of the trip planner API.
	APIURL string `env:"PLANNER_API_URL" envDefault:"http://localhost:8080"`

	// StorePath is the file holding the id of the trip being planned.
	StorePath string `env:"PLANNER_STORE_PATH" envDefault:"planner.db"`

	// HTTPTimeout bounds every API request.
	HTTPTimeout time.Duration `env:"PLANNER_HTTP_TIMEOUT" envDefault:"10s"`

	// Retries is how many times a failed GET is retried.
	Retries uint64 `env:"PLANNER_RETRIES" envDefault:"3"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
}

// Load reads the server configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, errors.New("config.Load: MAX_BODY_BYTES must be positive")
	}
	return cfg, nil
}

// LoadClient reads the planner CLI configuration from the environment.
func LoadClient() (ClientConfig, error) {
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return ClientConfig{}, fmt.Errorf("config.LoadClient: %w", err)
	}
	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if cfg.APIURL == "" {
		return ClientConfig{}, errors.New("config.LoadClient: PLANNER_API_URL must not be empty")
	}
	if cfg.HTTPTimeout <= 0 {
		return ClientConfig{}, errors.New("config.LoadClient: PLANNER_HTTP_TIMEOUT must be positive")
	}
	return cfg, nil
}

// Level parses a LOG_LEVEL value, falling back to info.
func Level(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// trimAll trims every entry and drops empty ones.
func trimAll(in []string) []string {
	var out []string
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
