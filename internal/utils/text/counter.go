// Package text provides character counting shared by request validation.
package text

import "unicode/utf8"

// CountRunes counts the Unicode characters (runes) in s rather than its bytes,
// so "こんにちは" counts as 5.
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

// WithinLimit reports whether s has at most limit characters.
func WithinLimit(s string, limit int) bool {
	return CountRunes(s) <= limit
}
