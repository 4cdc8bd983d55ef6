// Package testutil provides fixtures shared by handler tests.
package testutil

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"message-api/internal/config"
	"message-api/internal/metrics"
	"message-api/internal/service"
	"message-api/internal/store"
	v1 "message-api/internal/transport/http/v1"
)

// NewHandler builds a handler over a fresh in-memory store and registry,
// with logging discarded.
func NewHandler(t *testing.T) (*v1.Handler, *metrics.Registry) {
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
	registry := metrics.NewRegistry()
	svc := service.New(store.NewMemoryStore())
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return v1.NewHandler(svc, registry, cfg, log), registry
}
