package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articles-api/internal/handler/http/requestid"
	"articles-api/internal/observability/logging"
)

func jsonLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

/* ───────── アクセスログ ───────── */

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		status    int
		wantLevel string
		wantQuery string
	}{
		{"list", http.MethodGet, "/articles", http.StatusOK, "INFO", ""},
		{"search with query", http.MethodGet, "/articles/search/title?title=go", http.StatusOK, "INFO", "title=go"},
		{"duplicate create", http.MethodPost, "/articles", http.StatusConflict, "WARN", ""},
		{"storage failure", http.MethodGet, "/children", http.StatusInternalServerError, "ERROR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := Logging(slog.New(slog.NewJSONHandler(&buf, nil)))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("response body"))
			}))

			req := httptest.NewRequest(tt.method, tt.target, nil)
			req.Header.Set("User-Agent", "test-agent/1.0")
			h.ServeHTTP(httptest.NewRecorder(), req)

			entries := jsonLines(t, &buf)
			require.Len(t, entries, 1)
			e := entries[0]
			assert.Equal(t, "request completed", e["msg"])
			assert.Equal(t, tt.wantLevel, e["level"])
			assert.Equal(t, tt.method, e["method"])
			assert.Equal(t, req.URL.Path, e["path"])
			assert.Equal(t, tt.wantQuery, e["query"])
			assert.Equal(t, "test-agent/1.0", e["user_agent"])
			assert.Equal(t, float64(tt.status), e["status"])
			assert.Equal(t, float64(len("response body")), e["bytes"])
		})
	}
}

func TestLogging_StoresRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := requestid.Middleware(Logging(logger)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info("inside handler")
	})))

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	req.Header.Set(requestid.RequestIDHeader, "req-42")
	h.ServeHTTP(httptest.NewRecorder(), req)

	entries := jsonLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "inside handler", entries[0]["msg"])
	for _, e := range entries {
		assert.Equal(t, "req-42", e["request_id"])
	}
}

/* ───────── パニック回復 ───────── */

func TestRecover(t *testing.T) {
	for _, v := range []any{"nil map write", errors.New("boom"), 42} {
		var buf bytes.Buffer
		h := Recover(slog.New(slog.NewJSONHandler(&buf, nil)))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(v)
		}))

		rr := httptest.NewRecorder()
		require.NotPanics(t, func() { h.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/parents/1", nil)) })

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"message":"internal server error"}`, rr.Body.String())
		e := jsonLines(t, &buf)[0]
		assert.Equal(t, "panic recovered", e["msg"])
		assert.Equal(t, "/parents/1", e["path"])
		assert.NotEmpty(t, e["stack"])
	}
}

func TestRecover_NoPanic(t *testing.T) {
	h := Recover(slog.New(slog.NewJSONHandler(io.Discard, nil)))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRecover_AfterHeaderWritten(t *testing.T) {
	h := Recover(slog.New(slog.NewJSONHandler(io.Discard, nil)))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		panic("late")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/articles", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestRecover_ReRaisesAbortHandler(t *testing.T) {
	h := Recover(slog.New(slog.NewJSONHandler(io.Discard, nil)))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/articles", nil))
	})
}

/* ───────── ボディサイズ制限 ───────── */

func TestLimitRequestBody(t *testing.T) {
	tests := []struct {
		name     string
		max      int64
		size     int
		wantRead bool
	}{
		{"within limit", 1024, 512, true},
		{"exactly at limit", 1024, 1024, true},
		{"over limit", 100, 101, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var readErr error
			h := LimitRequestBody(tt.max)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				_, readErr = io.ReadAll(r.Body)
			}))

			req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(strings.Repeat("a", tt.size)))
			h.ServeHTTP(httptest.NewRecorder(), req)

			if tt.wantRead {
				assert.NoError(t, readErr)
				return
			}
			var maxErr *http.MaxBytesError
			assert.ErrorAs(t, readErr, &maxErr)
		})
	}
}

func TestLimitRequestBody_NoBody(t *testing.T) {
	h := LimitRequestBody(1)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.NoBody, r.Body)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/articles", nil))
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("first"), mw("second"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first", "second", "handler"}, order)
}
