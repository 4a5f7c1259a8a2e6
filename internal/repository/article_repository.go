package repository

import (
	"context"

	"articles-api/internal/domain/entity"
)

// ArticleRepository persists articles.
// Implementations resolve their executor from the context so every method
// joins the caller's unit of work when one is open.
type ArticleRepository interface {
	// List returns every article in store order. An empty table yields an empty, non-nil slice.
	List(ctx context.Context) ([]*entity.Article, error)
	// Count returns the number of stored articles.
	Count(ctx context.Context) (int64, error)
	// Get returns the article and true, or (nil, false, nil) when no row has that id.
	Get(ctx context.Context, id int64) (*entity.Article, bool, error)
	// SearchBy returns articles whose field contains value as a substring.
	// field must come from entity.ArticleSearchFields.
	SearchBy(ctx context.Context, field entity.SearchField, value string) ([]*entity.Article, error)
	// Create inserts the article and stores the assigned id on it.
	// A duplicate (title, author) pair returns an error matching entity.ErrConflict.
	Create(ctx context.Context, article *entity.Article) error
	// UpdateNickname changes only the nickname column. It reports false when the id is absent.
	UpdateNickname(ctx context.Context, id int64, nickname string) (bool, error)
	// Delete removes the article. It reports false when the id is absent.
	Delete(ctx context.Context, id int64) (bool, error)
}
