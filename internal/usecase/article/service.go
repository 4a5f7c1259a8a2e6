package article

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"articles-api/internal/domain/entity"
	"articles-api/internal/observability/logging"
	"articles-api/internal/observability/metrics"
	"articles-api/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
// A nil field takes its value from entity.ArticleDefaults; an empty string is kept.
type CreateInput struct {
	Nickname    *string
	Author      *string
	Title       *string
	Description *string
	URL         *string
	URLToImage  *string
	PublishedAt *string
	Content     *string
	SourceID    *string
	SourceName  *string
}

// Article builds the entity with defaults applied.
func (in CreateInput) Article() *entity.Article {
	d := entity.ArticleDefaults
	pick := func(v *string, def string) string {
		if v == nil {
			return def
		}
		return *v
	}
	return &entity.Article{
		Nickname:    pick(in.Nickname, d.Nickname),
		Author:      pick(in.Author, d.Author),
		Title:       pick(in.Title, d.Title),
		Description: pick(in.Description, d.Description),
		URL:         pick(in.URL, d.URL),
		URLToImage:  pick(in.URLToImage, d.URLToImage),
		PublishedAt: pick(in.PublishedAt, d.PublishedAt),
		Content:     pick(in.Content, d.Content),
		SourceID:    pick(in.SourceID, d.SourceID),
		SourceName:  pick(in.SourceName, d.SourceName),
	}
}

// Service provides article management use cases.
// Every operation runs inside one unit of work; Tx may be nil in tests.
type Service struct {
	Repo repository.ArticleRepository
	Tx   repository.UnitOfWork
}

func (s *Service) do(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.Tx == nil {
		return fn(ctx)
	}
	return s.Tx.Do(ctx, fn)
}

// List retrieves all articles. An empty store yields an empty, non-nil slice.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	var articles []*entity.Article
	err := s.do(ctx, func(ctx context.Context) error {
		var err error
		articles, err = s.Repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, storageError("list articles", err)
	}
	if articles == nil {
		articles = []*entity.Article{}
	}
	return articles, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive and an
// *entity.NotFoundError if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	var article *entity.Article
	err := s.do(ctx, func(ctx context.Context) error {
		a, found, err := s.Repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return notFound(id)
		}
		article = a
		return nil
	})
	if err != nil {
		return nil, storageError("get article", err)
	}
	return article, nil
}

// Search returns the articles whose field contains value.
// fieldName must be a key of entity.ArticleSearchFields.
func (s *Service) Search(ctx context.Context, fieldName, value string) ([]*entity.Article, error) {
	field, ok := entity.LookupArticleSearchField(fieldName)
	if !ok {
		return nil, &entity.ValidationError{Field: "field", Message: "unsupported search field " + fieldName}
	}
	if strings.TrimSpace(value) == "" {
		return nil, &entity.ValidationError{Field: field.Param, Message: "is required"}
	}

	var articles []*entity.Article
	err := s.do(ctx, func(ctx context.Context) error {
		var err error
		articles, err = s.Repo.SearchBy(ctx, field, value)
		return err
	})
	if err != nil {
		return nil, storageError("search articles", err)
	}
	metrics.RecordArticleSearch(fieldName)
	if articles == nil {
		articles = []*entity.Article{}
	}
	return articles, nil
}

// Create stores a new article built from in.
// A duplicate (title, author) pair returns an *entity.ConflictError.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	article := in.Article()

	err := s.do(ctx, func(ctx context.Context) error {
		return s.Repo.Create(ctx, article)
	})
	if errors.Is(err, entity.ErrConflict) {
		metrics.RecordArticleConflict()
		logging.FromContext(ctx).Info("duplicate article rejected",
			slog.String("title", article.Title),
			slog.String("author", article.Author))
		return nil, &entity.ConflictError{Message: MsgArticleExists, Err: err}
	}
	if err != nil {
		return nil, storageError("create article", err)
	}
	return article, nil
}

// UpdateNickname changes the nickname of an existing article and returns the updated article.
func (s *Service) UpdateNickname(ctx context.Context, id int64, nickname string) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	var article *entity.Article
	err := s.do(ctx, func(ctx context.Context) error {
		// 存在確認を先に行う
		a, found, err := s.Repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return notFound(id)
		}
		updated, err := s.Repo.UpdateNickname(ctx, id, nickname)
		if err != nil {
			return err
		}
		// 確認後に別トランザクションで削除された
		if !updated {
			return notFound(id)
		}
		a.Nickname = nickname
		article = a
		return nil
	})
	if err != nil {
		return nil, storageError("update article nickname", err)
	}
	return article, nil
}

// Delete removes an article by its ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	err := s.do(ctx, func(ctx context.Context) error {
		_, found, err := s.Repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return notFound(id)
		}
		deleted, err := s.Repo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return notFound(id)
		}
		return nil
	})
	if err != nil {
		return storageError("delete article", err)
	}
	return nil
}

// Count returns the number of stored articles.
func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, storageError("count articles", err)
	}
	return n, nil
}
