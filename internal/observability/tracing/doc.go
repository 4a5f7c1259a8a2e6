// Package tracing wires OpenTelemetry into the service.
//
// InitProvider installs the SDK provider and W3C propagators when tracing is
// enabled in the config. Middleware opens the per-request server span, and
// db.UnitOfWork opens a child span per transaction via GetTracer.
package tracing
