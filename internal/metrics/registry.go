// Package metrics implements the request counter registry.
//
// The registry is passive: counters are incremented by explicit calls from
// the transport layer, never by the store or the validator. It owns its own
// lock, independent of the store's, so recording a request never serializes
// against a store mutation.
package metrics

import (
	"log/slog"
	"maps"
	"strconv"
	"sync"
	"time"

	"message-api/internal/domain"
)

// Registry is a concurrency-safe set of monotonically increasing counters.
// Counters reset only with the process.
type Registry struct {
	mu                  sync.Mutex
	totalRequests       int64
	successfulRequests  int64
	failedRequests      int64
	requestsByMethod    map[string]int64
	responsesByStatus   map[string]int64
	creationAttempts    int64
	successfulCreations int64
	failedCreations     int64
	startTime           time.Time
}

// NewRegistry creates a registry with all counters at zero. Uptime is
// measured from this call.
func NewRegistry() *Registry {
	return &Registry{
		requestsByMethod:  make(map[string]int64),
		responsesByStatus: make(map[string]int64),
		startTime:         time.Now().UTC(),
	}
}

// RecordRequest counts an incoming request and its HTTP method.
func (r *Registry) RecordRequest(method string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.totalRequests++
	r.requestsByMethod[method]++
}

// RecordResponse counts a response by status code. Codes below 400 count as
// successful requests, the rest as failed.
func (r *Registry) RecordResponse(status int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.responsesByStatus[strconv.Itoa(status)]++
	if status < 400 {
		r.successfulRequests++
	} else {
		r.failedRequests++
	}
}

// RecordCreationAttempt counts an attempt to create a message.
func (r *Registry) RecordCreationAttempt() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.creationAttempts++
}

// RecordCreationResult counts the outcome of a creation attempt.
func (r *Registry) RecordCreationResult(success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if success {
		r.successfulCreations++
	} else {
		r.failedCreations++
	}
}

// Snapshot returns a consistent copy of all counters plus uptime, read
// under a single lock acquisition. TotalMessages is left at zero; the store
// owns that number.
func (r *Registry) Snapshot() domain.MetricsSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return domain.MetricsSnapshot{
		TotalRequests:       r.totalRequests,
		SuccessfulRequests:  r.successfulRequests,
		FailedRequests:      r.failedRequests,
		RequestsByMethod:    maps.Clone(r.requestsByMethod),
		ResponsesByStatus:   maps.Clone(r.responsesByStatus),
		CreationAttempts:    r.creationAttempts,
		SuccessfulCreations: r.successfulCreations,
		FailedCreations:     r.failedCreations,
		UptimeSeconds:       time.Since(r.startTime).Seconds(),
	}
}

// SuccessRate returns the percentage of requests that succeeded, or 0 if
// none were recorded.
func (r *Registry) SuccessRate() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.totalRequests == 0 {
		return 0
	}
	return float64(r.successfulRequests) / float64(r.totalRequests) * 100
}

// CreationSuccessRate returns the percentage of creation attempts that
// succeeded, or 0 if none were recorded.
func (r *Registry) CreationSuccessRate() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.creationAttempts == 0 {
		return 0
	}
	return float64(r.successfulCreations) / float64(r.creationAttempts) * 100
}

// LogSummary logs a one-line summary of the counters, typically on
// shutdown.
func (r *Registry) LogSummary(log *slog.Logger) {
	snap := r.Snapshot()
	log.Info("metrics summary",
		"total_requests", snap.TotalRequests,
		"successful_requests", snap.SuccessfulRequests,
		"failed_requests", snap.FailedRequests,
		"success_rate_pct", r.SuccessRate(),
		"successful_creations", snap.SuccessfulCreations,
		"creation_attempts", snap.CreationAttempts,
	)
}
