package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleDefaults(t *testing.T) {
	assert.Equal(t, int64(0), ArticleDefaults.ID)
	assert.Equal(t, "Unknown", ArticleDefaults.Nickname)
	assert.Equal(t, "Unknown", ArticleDefaults.Author)
	assert.Equal(t, "Article Title", ArticleDefaults.Title)
	assert.Equal(t, "Article Description", ArticleDefaults.Description)
	assert.Equal(t, "Article URL", ArticleDefaults.URL)
	assert.Equal(t, "Article URL to Image", ArticleDefaults.URLToImage)
	assert.Equal(t, "Article Published At", ArticleDefaults.PublishedAt)
	assert.Equal(t, "Article Content", ArticleDefaults.Content)
	assert.Equal(t, "Article Source ID", ArticleDefaults.SourceID)
	assert.Equal(t, "Article Source Name", ArticleDefaults.SourceName)
}

func TestLookupArticleSearchField(t *testing.T) {
	tests := []struct {
		name   string
		column string
		param  string
		ok     bool
	}{
		{name: "author", column: "author", param: "author", ok: true},
		{name: "authors", column: "author", param: "author", ok: true},
		{name: "title", column: "title", param: "title", ok: true},
		{name: "source", column: "source_name", param: "source_name", ok: true},
		{name: "nickname", column: "nickname", param: "nickname", ok: true},
		{name: "content", ok: false},
		{name: "id; DROP TABLE articles", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := LookupArticleSearchField(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.column, f.Column)
			assert.Equal(t, tt.param, f.Param)
		})
	}
}

func TestParseBirthDate(t *testing.T) {
	got, err := ParseBirthDate("2019-04-30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, 4, 30, 0, 0, 0, 0, time.UTC), got)

	for _, bad := range []string{"", "30/04/2019", "2019-13-01", "2019-04-30T00:00:00Z"} {
		_, err := ParseBirthDate(bad)
		assert.ErrorIs(t, err, ErrValidationFailed, bad)
	}
}
