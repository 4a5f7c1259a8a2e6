// Package observability groups the service's logging, metrics and tracing.
//
//   - logging: slog loggers carrying request_id and trace_id
//   - metrics: Prometheus collectors behind /metrics
//   - tracing: OpenTelemetry provider and the per-request span middleware
package observability
