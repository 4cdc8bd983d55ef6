package v1

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"message-api/internal/config"
	"message-api/internal/metrics"
	"message-api/internal/service"
	"message-api/internal/store"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.Config{
		AppName:         "Message API",
		AppVersion:      "0.0.0-test",
		Description:     "test instance",
		Host:            "127.0.0.1",
		Port:            8000,
		LogLevel:        "info",
		ShutdownTimeout: time.Second,
	}
	svc := service.New(store.NewMemoryStore())
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewHandler(svc, metrics.NewRegistry(), cfg, log)
}
