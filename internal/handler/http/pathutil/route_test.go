package pathutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternRoute(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"GET    /articles", "/articles"},
		{"GET    /articles/{id}", "/articles/:id"},
		{"DELETE /articles/{$}", "/articles"},
		{"GET    /articles/search/{field}", "/articles/search/:field"},
		{"GET    /parents/{id}/children", "/parents/:id/children"},
		{"GET /files/{path...}", "/files/:path"},
		{"GET /{$}", "/"},
		{"/swagger/", "/swagger/*"},
		{"example.com/status", "/status"},
		{"GET", Unmatched},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, PatternRoute(tt.pattern))
		})
	}
}

func serveTracked(h http.Handler, method, target string) *http.Request {
	r := TrackRoute(httptest.NewRequest(method, target, nil))
	h.ServeHTTP(httptest.NewRecorder(), r)
	return r
}

func TestRoute_UsesMuxPattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /reports/{slug}", func(http.ResponseWriter, *http.Request) {})
	h := RecordRoute(mux)

	// NormalizePath は /reports を知らない
	r := serveTracked(h, http.MethodGet, "/reports/q3")
	assert.Equal(t, "/reports/:slug", Route(r))
	assert.Equal(t, Unmatched, NormalizePath(r.URL.Path))
}

func TestRoute_FallsBackToNormalizePath(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /reports/{slug}", func(http.ResponseWriter, *http.Request) {})
	h := RecordRoute(mux)

	tests := []struct {
		name   string
		method string
		target string
		want   string
	}{
		{"no route", http.MethodGet, "/articles/7", "/articles/:id"},
		{"method not allowed", http.MethodPost, "/reports/q3", Unmatched},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Route(serveTracked(h, tt.method, tt.target)))
		})
	}

	t.Run("untracked request", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/reports/q3", nil)
		h.ServeHTTP(httptest.NewRecorder(), r)
		assert.Equal(t, Unmatched, Route(r))
	})
}

func TestRoute_RecordedWhenHandlerPanics(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /children/{id}", func(http.ResponseWriter, *http.Request) { panic("boom") })

	r := TrackRoute(httptest.NewRequest(http.MethodPut, "/children/3", nil))
	require.Panics(t, func() { RecordRoute(mux).ServeHTTP(httptest.NewRecorder(), r) })
	assert.Equal(t, "/children/:id", Route(r))
}

func TestTrackRoute_SharesSlot(t *testing.T) {
	r := TrackRoute(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Same(t, r, TrackRoute(r))
}
