package text_test

import (
	"strings"
	"testing"

	"articles-api/internal/utils/text"
)

func TestCountRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "empty", input: "", expected: 0},
		{name: "ASCII text", input: "hello world", expected: 11},
		{name: "Japanese hiragana", input: "こんにちは", expected: 5},
		{name: "mixed", input: "hello世界", expected: 7},
		{name: "emoji", input: "Hello👋", expected: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text.CountRunes(tt.input); got != tt.expected {
				t.Errorf("CountRunes(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWithinLimit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  bool
	}{
		{name: "under", input: "abc", limit: 50, want: true},
		{name: "exactly at limit", input: strings.Repeat("a", 50), limit: 50, want: true},
		{name: "one over", input: strings.Repeat("a", 51), limit: 50, want: false},
		{name: "multibyte at limit", input: strings.Repeat("日", 50), limit: 50, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text.WithinLimit(tt.input, tt.limit); got != tt.want {
				t.Errorf("WithinLimit() = %v, want %v", got, tt.want)
			}
		})
	}
}
