package tracing

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/requestid"
	"articles-api/internal/handler/http/responsewriter"
)

// TraceIDHeader echoes the trace id so clients can quote it in bug reports.
const TraceIDHeader = "X-Trace-Id"

// Middleware opens one server span per request, continuing any W3C trace
// context the caller sent. Once the request is served the span is named
// "<METHOD> <route>" after the route pathutil.Route reports. Only 5xx
// responses mark it as an error.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = pathutil.TrackRoute(r)
		attrs := []attribute.KeyValue{
			attribute.String("http.method", r.Method),
			attribute.String("http.path", r.URL.Path),
		}
		if id := requestid.FromContext(r.Context()); id != "" {
			attrs = append(attrs, attribute.String("request.id", id))
		}

		parent := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx, span := tracer.Start(parent, r.Method,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		w.Header().Set(TraceIDHeader, span.SpanContext().TraceID().String())
		rw := responsewriter.Wrap(w)
		next.ServeHTTP(rw, r.WithContext(ctx))

		route := pathutil.Route(r)
		span.SetName(r.Method + " " + route)
		status := rw.StatusCode()
		span.SetAttributes(
			attribute.String("http.route", route),
			attribute.Int("http.status_code", status),
			attribute.Int("http.response_size", rw.BytesWritten()),
		)
		if status >= http.StatusInternalServerError {
			span.SetAttributes(attribute.Bool("error", true))
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	})
}
