package sqlite

import (
	"fmt"

	"articles-api/internal/domain/entity"
	"articles-api/internal/pkg/search"
)

// ArticleQueryBuilder builds WHERE clauses for article substring search in SQLite.
// It uses ? placeholders and LIKE with an explicit escape character.
type ArticleQueryBuilder struct {
	columns map[string]struct{}
}

// NewArticleQueryBuilder creates a query builder that accepts only the
// columns listed in entity.ArticleSearchFields.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	columns := make(map[string]struct{}, len(entity.ArticleSearchFields))
	for _, f := range entity.ArticleSearchFields {
		columns[f.Column] = struct{}{}
	}
	return &ArticleQueryBuilder{columns: columns}
}

// BuildSearchClause returns a WHERE clause matching value anywhere in field's column.
// SQLite's LIKE is case-insensitive for ASCII letters.
func (qb *ArticleQueryBuilder) BuildSearchClause(field entity.SearchField, value string) (clause string, args []interface{}, err error) {
	if _, ok := qb.columns[field.Column]; !ok {
		return "", nil, fmt.Errorf("column %q is not searchable", field.Column)
	}
	clause = fmt.Sprintf(`WHERE %s LIKE ? ESCAPE '%s'`, field.Column, search.EscapeChar)
	return clause, []interface{}{search.ContainsPattern(value)}, nil
}
