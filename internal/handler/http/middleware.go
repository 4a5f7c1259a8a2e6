package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"articles-api/internal/handler/http/requestid"
	"articles-api/internal/handler/http/respond"
	"articles-api/internal/handler/http/responsewriter"
	"articles-api/internal/observability/logging"
)

// Logging writes one access log line per request. The logger it stores in
// the request context carries request_id and trace_id, so use cases log
// with the same fields. 5xx responses log at error level and 4xx at warn.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()
			reqLogger := logging.WithTraceID(ctx, logging.WithRequestID(ctx, logger))
			rw := responsewriter.Wrap(w)

			next.ServeHTTP(rw, r.WithContext(logging.WithLogger(ctx, reqLogger)))

			reqLogger.LogAttrs(ctx, accessLevel(rw.StatusCode()), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("query", r.URL.RawQuery),
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("user_agent", r.UserAgent()),
				slog.Int("status", rw.StatusCode()),
				slog.Int("bytes", rw.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func accessLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// Recover turns a handler panic into a logged 500. If the handler already
// sent its status line the response is left as is.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := responsewriter.Wrap(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				if !rw.Written() {
					respond.SafeError(rw, r, http.StatusInternalServerError, fmt.Errorf("panic: %v", v))
				}
				logPanic(r.Context(), logger, r, v)
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

func logPanic(ctx context.Context, logger *slog.Logger, r *http.Request, v any) {
	logger.LogAttrs(ctx, slog.LevelError, "panic recovered",
		slog.String("request_id", requestid.FromContext(ctx)),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("panic", v),
		slog.String("stack", string(debug.Stack())),
	)
}

// LimitRequestBody caps request bodies at maxBytes. Reading past the cap
// fails with *http.MaxBytesError, which respond.DecodeJSON turns into a
// 413 "request body too large".
func LimitRequestBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Chain wraps h so that mws[0] runs first.
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
