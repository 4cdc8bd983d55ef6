package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	req := require.New(t)

	cfg, err := Load()
	req.NoError(err)
	req.Equal("Message API", cfg.AppName)
	req.Equal("1.0.0", cfg.AppVersion)
	req.Equal("0.0.0.0:8000", cfg.Addr())
	req.Equal("info", cfg.LogLevel)
	req.False(cfg.Debug)
	req.Equal(10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	req := require.New(t)
	t.Setenv("PORT", "9100")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("APP_VERSION", "2.3.4")

	cfg, err := Load()
	req.NoError(err)
	req.Equal(9100, cfg.Port)
	req.Equal("warn", cfg.LogLevel)
	req.Equal("2.3.4", cfg.AppVersion)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("port out of range", func(t *testing.T) {
		t.Setenv("PORT", "70000")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("unknown log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "verbose")
		_, err := Load()
		require.Error(t, err)
	})
}

func TestSlogLevel(t *testing.T) {
	req := require.New(t)

	req.Equal(slog.LevelWarn, (&Config{LogLevel: "warn"}).SlogLevel())
	req.Equal(slog.LevelInfo, (&Config{LogLevel: "info"}).SlogLevel())
	req.Equal(slog.LevelError, (&Config{LogLevel: "error"}).SlogLevel())

	// Debug mode wins over the configured level.
	req.Equal(slog.LevelDebug, (&Config{LogLevel: "error", Debug: true}).SlogLevel())
}
