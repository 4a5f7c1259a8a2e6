package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		// 記事
		{"/articles", "/articles"},
		{"/articles/", "/articles"},
		{"/articles/?id=5", "/articles"},
		{"/articles/123", "/articles/:id"},
		{"/articles/123/", "/articles/:id"},
		{"/articles/abc", "/articles/:id"},
		{"/articles/nickname?id=1&nickname=n", "/articles/nickname"},
		{"/articles/search/title?title=Go", "/articles/search/:field"},
		{"/articles/search/zzz", "/articles/search/:field"},
		{"/articles/search", "/articles/:id"},
		{"/articles/1/2", Unmatched},

		// 親子
		{"/parents", "/parents"},
		{"/parents/9", "/parents/:id"},
		{"/parents/9/children", "/parents/:id/children"},
		{"/children/12", "/children/:id"},
		{"/children/12/parents", Unmatched},

		// 固定パス
		{"/", "/"},
		{"/health", "/health"},
		{"/metrics", "/metrics"},
		{"/metrics/extra", Unmatched},
		{"/swagger/index.html", "/swagger/*"},

		{"/unknown/path/123", Unmatched},
		{"/wp-login.php", Unmatched},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.path))
		})
	}
}
