package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR, default=:8080"`
	LogLevel        string        `env:"LOG_LEVEL, default=info"`
	LogFormat       string        `env:"LOG_FORMAT, default=json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	USGS USGSConfig
}

// USGSConfig configures the upstream FDSN event service client. A zero
// Timeout means no client-side timeout; the core never imposes one itself,
// so any deadline is a deployment decision.
type USGSConfig struct {
	BaseURL string        `env:"USGS_BASE_URL, default=https://earthquake.usgs.gov/fdsnws/event/1/query"`
	Timeout time.Duration `env:"USGS_TIMEOUT, default=0s"`
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if cfg.USGS.Timeout < 0 {
		return nil, errors.New("USGS_TIMEOUT must not be negative")
	}
	if cfg.USGS.BaseURL == "" {
		return nil, errors.New("USGS_BASE_URL is required")
	}
	if _, err := url.ParseRequestURI(cfg.USGS.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid USGS_BASE_URL: %w", err)
	}

	return &cfg, nil
}
