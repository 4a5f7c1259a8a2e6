package pathutil

import "strings"

// Unmatched replaces paths outside the served route tree.
const Unmatched = "/unmatched"

// staticRoots are top-level paths served as-is.
var staticRoots = map[string]bool{
	"health":  true,
	"ready":   true,
	"live":    true,
	"metrics": true,
}

// resourceRoots are collections whose second segment is an id.
var resourceRoots = map[string]bool{
	"articles": true,
	"parents":  true,
	"children": true,
}

// NormalizePath maps a request path onto its route template so metric and
// span labels stay bounded. Query strings and a trailing slash are dropped,
// id segments become ":id", and paths no route serves become Unmatched.
//
//	NormalizePath("/articles/123")          // "/articles/:id"
//	NormalizePath("/articles/search/title") // "/articles/search/:field"
//	NormalizePath("/parents/4/children")    // "/parents/:id/children"
//	NormalizePath("/articles/?id=3")        // "/articles"
func NormalizePath(path string) string {
	path, _, _ = strings.Cut(path, "?")
	path = strings.Trim(path, "/")
	if path == "" {
		return "/"
	}

	segs := strings.Split(path, "/")
	root := segs[0]
	switch {
	case root == "swagger":
		return "/swagger/*"
	case staticRoots[root]:
		if len(segs) == 1 {
			return "/" + root
		}
		return Unmatched
	case !resourceRoots[root]:
		return Unmatched
	}

	if len(segs) == 1 {
		return "/" + root
	}
	if root == "articles" {
		switch segs[1] {
		case "nickname":
			if len(segs) == 2 {
				return "/articles/nickname"
			}
			return Unmatched
		case "search":
			if len(segs) == 3 {
				return "/articles/search/:field"
			}
		}
	}

	switch {
	case len(segs) == 2:
		return "/" + root + "/:id"
	case len(segs) == 3 && root == "parents" && segs[2] == "children":
		return "/parents/:id/children"
	}
	return Unmatched
}
