// Package config provides configuration for the message API.
package config

import (
	"fmt"
	"log/slog"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

// Config holds the service configuration, populated from environment
// variables.
type Config struct {
	AppName     string `env:"APP_NAME,default=Message API"`
	AppVersion  string `env:"APP_VERSION,default=1.0.0"`
	Description string `env:"APP_DESCRIPTION,default=A simple API for managing short text messages"`

	Host string `env:"HOST,default=0.0.0.0"`
	Port int    `env:"PORT,default=8000" validate:"min=1,max=65535"`

	LogLevel string `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
	Debug    bool   `env:"DEBUG,default=false"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SlogLevel maps LogLevel to a slog level. Debug mode forces debug logging.
func (c *Config) SlogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
