// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article, Parent and Child, along with
// their default values, searchable fields and domain-specific errors.
package entity

// Article represents a news article record.
// Every text field is free text; length bounds are enforced by the validation layer.
type Article struct {
	ID          int64
	Nickname    string
	Author      string
	Title       string
	Description string
	URL         string
	URLToImage  string
	PublishedAt string
	Content     string
	SourceID    string
	SourceName  string
}

// ArticleDefaults holds the placeholder value substituted for every create field
// the client leaves out. An explicit empty string is not replaced.
var ArticleDefaults = Article{
	Nickname:    "Unknown",
	Author:      "Unknown",
	Title:       "Article Title",
	Description: "Article Description",
	URL:         "Article URL",
	URLToImage:  "Article URL to Image",
	PublishedAt: "Article Published At",
	Content:     "Article Content",
	SourceID:    "Article Source ID",
	SourceName:  "Article Source Name",
}

// SearchField describes one substring-searchable field of an entity.
type SearchField struct {
	// Column is the storage column matched with LIKE '%value%'.
	Column string
	// Param is the query parameter carrying the search value.
	Param string
}

// ArticleSearchFields is the allowlist of article search routes keyed by the
// path segment after /articles/search/. "authors" is kept as an alias of "author".
var ArticleSearchFields = map[string]SearchField{
	"author":   {Column: "author", Param: "author"},
	"authors":  {Column: "author", Param: "author"},
	"title":    {Column: "title", Param: "title"},
	"source":   {Column: "source_name", Param: "source_name"},
	"nickname": {Column: "nickname", Param: "nickname"},
}

// LookupArticleSearchField returns the search configuration for name.
func LookupArticleSearchField(name string) (SearchField, bool) {
	f, ok := ArticleSearchFields[name]
	return f, ok
}
