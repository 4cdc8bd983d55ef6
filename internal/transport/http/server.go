// Package http provides the HTTP server implementation for the message API.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"message-api/internal/metrics"
	v1 "message-api/internal/transport/http/v1"
)

// NewServer creates and configures the echo server: standard middleware,
// the request/response metrics middleware, and all routes.
func NewServer(h *v1.Handler, registry *metrics.Registry) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(requestMetrics(registry))

	// Register routes
	h.RegisterRoutes(e)

	return e
}

// requestMetrics counts every request and its response status. Creation
// counters are recorded separately by the create handler; the registry has
// its own lock, so recording here never contends with the store.
func requestMetrics(registry *metrics.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			registry.RecordRequest(c.Request().Method)

			if err := next(c); err != nil {
				c.Error(err)
			}

			registry.RecordResponse(c.Response().Status)
			return nil
		}
	}
}
