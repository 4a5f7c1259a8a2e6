package pathutil

import (
	"net/http"
	"strconv"
	"strings"

	"articles-api/internal/domain/entity"
)

// Errors returned when the id in the URL path or query is missing or invalid.
// Both match entity.ErrValidationFailed.
var (
	ErrInvalidID = &entity.ValidationError{Field: "id", Message: "must be a positive integer"}
	ErrMissingID = &entity.ValidationError{Field: "id", Message: "is required"}
)

// ParseID parses a positive int64 id.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// PathID reads the {name} wildcard bound by the ServeMux pattern.
func PathID(r *http.Request, name string) (int64, error) {
	return ParseID(r.PathValue(name))
}

// QueryID reads the "id" query parameter used by the legacy /articles/?id= routes.
func QueryID(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		return 0, ErrMissingID
	}
	return ParseID(raw)
}
