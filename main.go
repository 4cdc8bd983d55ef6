package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"message-api/internal/config"
	"message-api/internal/metrics"
	"message-api/internal/service"
	"message-api/internal/store"
	transporthttp "message-api/internal/transport/http"
	v1 "message-api/internal/transport/http/v1"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	log.Info("starting service",
		"name", cfg.AppName,
		"version", cfg.AppVersion,
		"addr", cfg.Addr(),
	)

	// Initialize store and metrics (independent lock domains)
	messageStore := store.NewMemoryStore()
	registry := metrics.NewRegistry()

	// Initialize service
	svc := service.New(messageStore)

	// Initialize handler and server
	h := v1.NewHandler(svc, registry, cfg, log)
	e := transporthttp.NewServer(h, registry)

	// Start server
	go func() {
		if err := e.Start(cfg.Addr()); err != nil && err != http.ErrServerClosed {
			log.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shut down gracefully", "error", err)
	}

	registry.LogSummary(log)
	log.Info("stopped")
}
