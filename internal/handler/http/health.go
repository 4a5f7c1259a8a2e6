// Package http holds the HTTP plumbing shared by the article and child
// handlers: middleware chaining, probes and the metrics endpoint.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"articles-api/internal/handler/http/respond"
	"articles-api/internal/resilience/circuitbreaker"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"

	// poolBusyPercent marks the pool as degraded.
	poolBusyPercent = 80.0
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"` // RFC 3339, UTC
	Version   string                 `json:"version"`
	Checks    map[string]CheckStatus `json:"checks"`
}

// CheckStatus is the outcome of one dependency check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthHandler reports database reachability, pool pressure and the state
// of the database circuit breaker. Only an unreachable database makes it
// answer 503; a busy pool or an open breaker is reported as degraded.
type HealthHandler struct {
	DB      *sql.DB
	Breaker *circuitbreaker.Breaker
	Version string
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]CheckStatus{"database": h.database(ctx)}
	if h.Breaker != nil {
		checks["circuit_breaker"] = breakerStatus(h.Breaker)
	}

	code, overall := http.StatusOK, statusHealthy
	if checks["database"].Status == statusUnhealthy {
		code, overall = http.StatusServiceUnavailable, statusUnhealthy
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    overall,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.Version,
		Checks:    checks,
	})
}

func (h *HealthHandler) database(ctx context.Context) CheckStatus {
	if h.DB == nil {
		return CheckStatus{Status: statusUnhealthy, Message: "not configured"}
	}
	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{Status: statusUnhealthy, Message: respond.SanitizeError(err)}
	}
	return poolStatus(h.DB.Stats())
}

func poolStatus(s sql.DBStats) CheckStatus {
	details := map[string]any{
		"max_open_connections": s.MaxOpenConnections,
		"open_connections":     s.OpenConnections,
		"in_use":               s.InUse,
		"idle":                 s.Idle,
		"wait_count":           s.WaitCount,
		"wait_duration_ms":     s.WaitDuration.Milliseconds(),
	}

	// 0 は上限なし。割合は出せない
	if s.MaxOpenConnections == 0 {
		return CheckStatus{
			Status:  statusDegraded,
			Message: "connection pool max connections not configured",
			Details: details,
		}
	}

	busy := float64(s.InUse) / float64(s.MaxOpenConnections) * 100
	details["utilization_percent"] = busy
	if busy >= poolBusyPercent {
		return CheckStatus{Status: statusDegraded, Message: "connection pool utilization above 80%", Details: details}
	}
	return CheckStatus{Status: statusHealthy, Details: details}
}

func breakerStatus(b *circuitbreaker.Breaker) CheckStatus {
	details := map[string]any{
		"name":                 b.Name(),
		"state":                b.State().String(),
		"consecutive_failures": b.ConsecutiveFailures(),
	}
	if b.IsOpen() {
		return CheckStatus{Status: statusDegraded, Message: "database circuit breaker is open", Details: details}
	}
	return CheckStatus{Status: statusHealthy, Details: details}
}

// ReadyHandler answers 200 "ready" once the database accepts pings.
type ReadyHandler struct {
	DB *sql.DB
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.DB == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.DB.PingContext(ctx); err != nil {
		http.Error(w, "database not ready: "+respond.SanitizeError(err), http.StatusServiceUnavailable)
		return
	}
	writeText(w, "ready")
}

// LiveHandler answers 200 "alive" without touching any dependency.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	writeText(w, "alive")
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Default().Error("probe: failed to write response", slog.String("body", body), slog.Any("error", err))
	}
}
