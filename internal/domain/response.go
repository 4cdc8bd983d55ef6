package domain

import "time"

// ErrorResponse is the structured error body returned for every failed
// request. Details is null unless a handler has something to add.
type ErrorResponse struct {
	Status  int            `json:"status"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// DeleteAllResponse is the body of DELETE /messages.
type DeleteAllResponse struct {
	Status       int    `json:"status"`
	Message      string `json:"message"`
	DeletedCount int    `json:"deleted_count"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// MetricsSnapshot is a consistent point-in-time copy of all counters.
// Every counter field is read under a single lock acquisition; only
// TotalMessages is filled in afterwards by the metrics handler, since the
// message count belongs to the store, not the registry.
type MetricsSnapshot struct {
	TotalMessages       int              `json:"total_messages"`
	TotalRequests       int64            `json:"total_requests"`
	SuccessfulRequests  int64            `json:"successful_requests"`
	FailedRequests      int64            `json:"failed_requests"`
	RequestsByMethod    map[string]int64 `json:"requests_by_type"`
	ResponsesByStatus   map[string]int64 `json:"response_codes"`
	CreationAttempts    int64            `json:"creation_attempts"`
	SuccessfulCreations int64            `json:"successful_creations"`
	FailedCreations     int64            `json:"failed_creations"`
	UptimeSeconds       float64          `json:"uptime_seconds"`
}
