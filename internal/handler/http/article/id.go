package article

import (
	"net/http"

	"articles-api/internal/handler/http/pathutil"
)

// requestID reads the article id from the {id} wildcard, or from ?id= on the
// query-string routes that have no wildcard.
func requestID(r *http.Request) (int64, error) {
	if raw := r.PathValue("id"); raw != "" {
		return pathutil.ParseID(raw)
	}
	return pathutil.QueryID(r)
}
