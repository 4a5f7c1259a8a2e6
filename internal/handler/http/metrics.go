package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/responsewriter"
	"articles-api/internal/observability/metrics"
)

// MetricsMiddleware feeds the http_* collectors. Paths are labelled by
// route template (/articles/:id), never by raw URL: the pattern the mux
// matched when it is wrapped in pathutil.RecordRoute, otherwise
// pathutil.NormalizePath.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.ActiveConnections.Inc()
		defer metrics.ActiveConnections.Dec()

		start := time.Now()
		r = pathutil.TrackRoute(r)
		rw := responsewriter.Wrap(w)
		next.ServeHTTP(rw, r)

		metrics.RecordHTTPRequest(r.Method, pathutil.Route(r),
			strconv.Itoa(rw.StatusCode()), time.Since(start),
			int(max(r.ContentLength, 0)), rw.BytesWritten())
	})
}

// MetricsHandler serves the default Prometheus registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
