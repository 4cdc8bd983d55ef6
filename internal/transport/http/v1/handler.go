// Package v1 provides the HTTP handlers for the message API.
package v1

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"message-api/internal/config"
	"message-api/internal/domain"
	"message-api/internal/metrics"
	"message-api/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
	metrics *metrics.Registry
	config  *config.Config
	log     *slog.Logger
}

// NewHandler creates a new handler.
func NewHandler(svc *service.Service, registry *metrics.Registry, cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		service: svc,
		metrics: registry,
		config:  cfg,
		log:     log,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Message CRUD
	e.POST("/messages", h.CreateMessage)
	e.GET("/messages", h.ListMessages)
	e.GET("/messages/:message_id", h.GetMessage)
	e.DELETE("/messages/:message_id", h.DeleteMessage)
	e.DELETE("/messages", h.DeleteAllMessages)

	// System
	e.GET("/", h.Root)
	e.GET("/health", h.Health)
	e.GET("/metrics", h.Metrics)
}

// Health returns health status.
// GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   h.config.AppVersion,
	})
}

// Metrics returns a point-in-time snapshot of all counters.
// GET /metrics
func (h *Handler) Metrics(c echo.Context) error {
	snap := h.metrics.Snapshot()
	snap.TotalMessages = h.service.MessageCount(c.Request().Context())
	return c.JSON(http.StatusOK, snap)
}

// Root returns service information.
// GET /
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"name":        h.config.AppName,
		"version":     h.config.AppVersion,
		"description": h.config.Description,
		"health":      "/health",
		"metrics":     "/metrics",
	})
}

// errorJSON writes the structured error body shared by all failure
// responses.
func errorJSON(c echo.Context, status int, code, message string) error {
	return c.JSON(status, domain.ErrorResponse{
		Status:  status,
		Code:    code,
		Message: message,
	})
}
