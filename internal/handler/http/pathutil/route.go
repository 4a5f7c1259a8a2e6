package pathutil

import (
	"context"
	"net/http"
	"strings"
)

type routeKey struct{}

type routeSlot struct {
	pattern string
}

// TrackRoute gives r a slot for the ServeMux pattern that ends up serving it.
// A request that already carries one is returned unchanged, so the tracing
// and metrics middleware share the same slot.
func TrackRoute(r *http.Request) *http.Request {
	if _, ok := r.Context().Value(routeKey{}).(*routeSlot); ok {
		return r
	}
	return r.WithContext(context.WithValue(r.Context(), routeKey{}, &routeSlot{}))
}

// RecordRoute wraps the mux and copies the pattern it matched into the slot
// set up by TrackRoute. ServeMux sets r.Pattern on the request it is handed.
func RecordRoute(mux http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// パニックでも記録する
		defer func() {
			if slot, ok := r.Context().Value(routeKey{}).(*routeSlot); ok {
				slot.pattern = r.Pattern
			}
		}()
		mux.ServeHTTP(w, r)
	})
}

// Route is the label for r once it has been served: the matched mux pattern
// written as a route template, or NormalizePath when nothing was matched.
func Route(r *http.Request) string {
	if slot, ok := r.Context().Value(routeKey{}).(*routeSlot); ok && slot.pattern != "" {
		return PatternRoute(slot.pattern)
	}
	return NormalizePath(r.URL.Path)
}

// PatternRoute writes a ServeMux pattern in the NormalizePath form: the
// method and host are dropped, wildcards become ":name" and a subtree
// pattern ends in "/*".
//
//	PatternRoute("GET    /articles/{id}") // "/articles/:id"
//	PatternRoute("DELETE /articles/{$}")  // "/articles"
//	PatternRoute("/swagger/")             // "/swagger/*"
func PatternRoute(pattern string) string {
	i := strings.IndexByte(pattern, '/')
	if i < 0 {
		return Unmatched
	}
	path := pattern[i:]
	subtree := strings.HasSuffix(path, "/")

	var out []string
	if trimmed := strings.Trim(path, "/"); trimmed != "" {
		for _, seg := range strings.Split(trimmed, "/") {
			switch {
			case seg == "{$}":
				subtree = false
			case strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}"):
				out = append(out, ":"+strings.TrimSuffix(seg[1:len(seg)-1], "..."))
			default:
				out = append(out, seg)
			}
		}
	}

	route := "/" + strings.Join(out, "/")
	if subtree {
		return strings.TrimSuffix(route, "/") + "/*"
	}
	return route
}
