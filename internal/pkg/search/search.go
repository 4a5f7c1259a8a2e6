// Package search holds helpers shared by the substring search queries.
package search

import (
	"strings"
	"time"
)

// DefaultSearchTimeout bounds a single search query.
const DefaultSearchTimeout = 5 * time.Second

// EscapeChar is the LIKE escape character used with EscapeLike.
// Queries must declare it with ESCAPE '\'.
const EscapeChar = `\`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards so that s matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern returns the LIKE pattern matching s anywhere in a column.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}
