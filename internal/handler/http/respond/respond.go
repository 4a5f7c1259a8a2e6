// Package respond provides utilities for sending HTTP responses in JSON format.
// It maps domain errors onto status codes and sanitizes internal failures
// so storage details never reach clients.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"articles-api/internal/domain/entity"
	"articles-api/internal/observability/logging"
)

// Client-facing messages shared by every resource.
const (
	MsgInternal        = "internal server error"
	MsgCreateFailed    = "Something went wrong"
	MsgInvalidJSON     = "invalid JSON body"
	MsgValidationError = "validation failed"
)

// ErrBodyTooLarge is returned by DecodeJSON when the body exceeds the
// request body limit. It answers 413.
var ErrBodyTooLarge = errors.New("request body too large")

// ErrorBody is the shape of every error response.
type ErrorBody struct {
	Message string       `json:"message"`
	ID      *int64       `json:"id,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Message writes {"message": msg}.
func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, ErrorBody{Message: msg})
}

// SafeError sanitizes error messages before returning them to users.
// 5xx responses always carry a generic message and the detail is logged.
// Client errors are returned as-is. The log line carries the request's
// request_id and trace_id.
func SafeError(w http.ResponseWriter, r *http.Request, code int, err error) {
	if err == nil {
		return
	}

	if code < 500 {
		Message(w, code, err.Error())
		return
	}

	// 内部エラーはログに出力し、汎用メッセージを返す
	// 機密情報をマスクしてログ出力
	logging.FromContext(r.Context()).Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	Message(w, code, MsgInternal)
}

// Status returns the HTTP status for a domain error.
func Status(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// FromError writes the response for err.
// Validation errors list every rejected field. Anything outside the domain
// taxonomy is sanitized to a 500.
func FromError(w http.ResponseWriter, r *http.Request, err error) {
	FromErrorWithID(w, r, err, false)
}

// FromErrorWithID is FromError that also echoes the id of a NotFoundError.
func FromErrorWithID(w http.ResponseWriter, r *http.Request, err error, echoID bool) {
	if err == nil {
		return
	}

	var (
		ves entity.ValidationErrors
		ve  *entity.ValidationError
		nf  *entity.NotFoundError
		ce  *entity.ConflictError
	)
	switch {
	case errors.As(err, &ves):
		JSON(w, http.StatusBadRequest, ErrorBody{Message: MsgValidationError, Errors: fieldErrors(ves)})
	case errors.As(err, &ve):
		JSON(w, http.StatusBadRequest, ErrorBody{
			Message: MsgValidationError,
			Errors:  []FieldError{{Field: ve.Field, Message: ve.Message}},
		})
	case errors.As(err, &nf):
		body := ErrorBody{Message: nf.Message}
		if echoID {
			id := nf.ID
			body.ID = &id
		}
		JSON(w, http.StatusNotFound, body)
	case errors.As(err, &ce):
		Message(w, http.StatusConflict, ce.Message)
	case errors.Is(err, ErrBodyTooLarge):
		Message(w, http.StatusRequestEntityTooLarge, ErrBodyTooLarge.Error())
	default:
		SafeError(w, r, Status(err), err)
	}
}

// CreateError maps a create failure. Storage errors other than a conflict
// answer 400 "Something went wrong" and the cause is logged.
func CreateError(w http.ResponseWriter, r *http.Request, err error) {
	var se *entity.StorageError
	if errors.As(err, &se) {
		logging.FromContext(r.Context()).Error("create failed",
			slog.String("op", se.Op),
			slog.String("error", SanitizeError(err)))
		Message(w, http.StatusBadRequest, MsgCreateFailed)
		return
	}
	FromError(w, r, err)
}

func fieldErrors(ves entity.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(ves))
	for _, ve := range ves {
		out = append(out, FieldError{Field: ve.Field, Message: ve.Message})
	}
	return out
}

// DecodeJSON decodes the request body into v and rejects trailing data.
// A body over the request limit is ErrBodyTooLarge; any other decode
// failure is returned as a ValidationError.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxErr.Limit)
		}
		return &entity.ValidationError{Field: "body", Message: decodeMessage(err)}
	}
	if dec.More() {
		return &entity.ValidationError{Field: "body", Message: "must contain a single JSON object"}
	}
	return nil
}

func decodeMessage(err error) string {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	switch {
	case errors.As(err, &typeErr):
		return "field " + typeErr.Field + " must be " + typeErr.Type.String()
	case errors.As(err, &syntaxErr):
		return MsgInvalidJSON
	case errors.Is(err, io.EOF):
		return "request body is required"
	default:
		return MsgInvalidJSON
	}
}
