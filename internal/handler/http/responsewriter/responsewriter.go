// Package responsewriter records what a handler sent so the logging,
// metrics and tracing middleware can report it.
package responsewriter

import "net/http"

// ResponseWriter remembers the status code and body size of a response.
type ResponseWriter struct {
	http.ResponseWriter
	status int // 0 until the status line is sent
	size   int
}

// Wrap returns w itself when it is already a *ResponseWriter, so stacked
// middleware share one set of counters.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w}
}

// WriteHeader forwards the first call only, like net/http does.
func (w *ResponseWriter) WriteHeader(code int) {
	if w.status != 0 {
		return
	}
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// StatusCode is the sent status, or 200 when the handler wrote nothing.
func (w *ResponseWriter) StatusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *ResponseWriter) BytesWritten() int { return w.size }

// Written reports whether the status line has gone out. After that a
// panic can no longer be turned into a 500 response.
func (w *ResponseWriter) Written() bool { return w.status != 0 }

func (w *ResponseWriter) Flush() {
	f, ok := w.ResponseWriter.(http.Flusher)
	if !ok {
		return
	}
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	f.Flush()
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
