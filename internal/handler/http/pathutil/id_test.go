package pathutil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPathID(t *testing.T) {
	mux := http.NewServeMux()
	var got int64
	var gotErr error
	mux.HandleFunc("GET /articles/{id}", func(w http.ResponseWriter, r *http.Request) {
		got, gotErr = PathID(r, "id")
	})

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/articles/42", nil))
	if gotErr != nil || got != 42 {
		t.Fatalf("PathID() = %d, %v; want 42, nil", got, gotErr)
	}

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/articles/x", nil))
	if !errors.Is(gotErr, ErrInvalidID) {
		t.Fatalf("PathID() error = %v, want ErrInvalidID", gotErr)
	}
}

func TestQueryID(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantID  int64
		wantErr bool
	}{
		{name: "valid", target: "/articles/?id=7", wantID: 7},
		{name: "missing", target: "/articles/", wantErr: true},
		{name: "empty", target: "/articles/?id=", wantErr: true},
		{name: "not a number", target: "/articles/?id=seven", wantErr: true},
		{name: "zero", target: "/articles/?id=0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := QueryID(httptest.NewRequest(http.MethodGet, tt.target, nil))
			if (err != nil) != tt.wantErr {
				t.Fatalf("QueryID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.wantID {
				t.Errorf("QueryID() = %d, want %d", got, tt.wantID)
			}
		})
	}
}
