package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"articles-api/internal/domain/entity"
	"articles-api/internal/infra/db"
	"articles-api/internal/pkg/search"
	"articles-api/internal/repository"
)

// NULL の列は空文字として読む
const articleColumns = `id,
       COALESCE(nickname, ''), COALESCE(author, ''), COALESCE(title, ''),
       COALESCE(description, ''), COALESCE(url, ''), COALESCE(url_to_image, ''),
       COALESCE(published_at, ''), COALESCE(content, ''),
       COALESCE(source_id, ''), COALESCE(source_name, '')`

type ArticleRepo struct {
	conn         *sqlx.DB
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(conn *sqlx.DB) repository.ArticleRepository {
	return &ArticleRepo{
		conn:         conn,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

// exec は実行中のユニットオブワークがあればそのトランザクションを返す
func (repo *ArticleRepo) exec(ctx context.Context) db.Executor {
	return db.ExecutorFrom(ctx, repo.conn)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*entity.Article, error) {
	var a entity.Article
	if err := row.Scan(&a.ID,
		&a.Nickname, &a.Author, &a.Title,
		&a.Description, &a.URL, &a.URLToImage,
		&a.PublishedAt, &a.Content,
		&a.SourceID, &a.SourceName); err != nil {
		return nil, err
	}
	return &a, nil
}

func (repo *ArticleRepo) queryArticles(ctx context.Context, op, query string, args ...any) ([]*entity.Article, error) {
	rows, err := repo.exec(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return articles, nil
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	query := `SELECT ` + articleColumns + `
FROM articles`
	return repo.queryArticles(ctx, "List", query)
}

// Count returns the total number of articles in the database.
func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.exec(ctx).QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, bool, error) {
	query := `SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`
	article, err := scanArticle(repo.exec(ctx).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("Get: %w", err)
	}
	return article, true, nil
}

// SearchBy は部分一致検索。並び順は保証しない
func (repo *ArticleRepo) SearchBy(ctx context.Context, field entity.SearchField, value string) ([]*entity.Article, error) {
	whereClause, args, err := repo.queryBuilder.BuildSearchClause(field, value)
	if err != nil {
		return nil, fmt.Errorf("SearchBy: %w", err)
	}

	// Apply search timeout to prevent long-running queries
	ctx, cancel := context.WithTimeout(ctx, search.DefaultSearchTimeout)
	defer cancel()

	query := `SELECT ` + articleColumns + `
FROM articles
` + whereClause
	return repo.queryArticles(ctx, "SearchBy", query, args...)
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
       (nickname, author, title, description, url, url_to_image,
        published_at, content, source_id, source_name)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`
	err := repo.exec(ctx).QueryRowContext(ctx, query,
		article.Nickname, article.Author, article.Title,
		article.Description, article.URL, article.URLToImage,
		article.PublishedAt, article.Content,
		article.SourceID, article.SourceName,
	).Scan(&article.ID)
	if err != nil {
		return translateError("Create", err)
	}
	return nil
}

func (repo *ArticleRepo) UpdateNickname(ctx context.Context, id int64, nickname string) (bool, error) {
	const query = `UPDATE articles SET nickname = $1 WHERE id = $2`
	res, err := repo.exec(ctx).ExecContext(ctx, query, nickname, id)
	if err != nil {
		return false, fmt.Errorf("UpdateNickname: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("UpdateNickname: RowsAffected: %w", err)
	}
	return n > 0, nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.exec(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	return n > 0, nil
}
