// Package sqlite provides SQLite implementations of repository interfaces.
// Rows are mapped with sqlx struct scanning.
package sqlite

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

// articleRow is the sqlx mapping of one articles row.
type articleRow struct {
	ID          int64  `db:"id"`
	Nickname    string `db:"nickname"`
	Author      string `db:"author"`
	Title       string `db:"title"`
	Description string `db:"description"`
	URL         string `db:"url"`
	URLToImage  string `db:"url_to_image"`
	PublishedAt string `db:"published_at"`
	Content     string `db:"content"`
	SourceID    string `db:"source_id"`
	SourceName  string `db:"source_name"`
}

func (r articleRow) toEntity() *entity.Article {
	return &entity.Article{
		ID:          r.ID,
		Nickname:    r.Nickname,
		Author:      r.Author,
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		URLToImage:  r.URLToImage,
		PublishedAt: r.PublishedAt,
		Content:     r.Content,
		SourceID:    r.SourceID,
		SourceName:  r.SourceName,
	}
}

func toArticles(rows []articleRow) []*entity.Article {
	articles := make([]*entity.Article, 0, len(rows))
	for _, r := range rows {
		articles = append(articles, r.toEntity())
	}
	return articles
}

// NULL の列は空文字として読む
const selectArticles = `
SELECT id,
       COALESCE(nickname, '')     AS nickname,
       COALESCE(author, '')       AS author,
       COALESCE(title, '')        AS title,
       COALESCE(description, '')  AS description,
       COALESCE(url, '')          AS url,
       COALESCE(url_to_image, '') AS url_to_image,
       COALESCE(published_at, '') AS published_at,
       COALESCE(content, '')      AS content,
       COALESCE(source_id, '')    AS source_id,
       COALESCE(source_name, '')  AS source_name
FROM articles`

// ArticleRepo implements the ArticleRepository interface using SQLite.
type ArticleRepo struct {
	conn         *sqlx.DB
	queryBuilder *ArticleQueryBuilder
}

// NewArticleRepo creates a new SQLite-backed article repository.
func NewArticleRepo(conn *sqlx.DB) repository.ArticleRepository {
	return &ArticleRepo{conn: conn, queryBuilder: NewArticleQueryBuilder()}
}

func (repo *ArticleRepo) exec(ctx context.Context) db.Executor {
	return db.ExecutorFrom(ctx, repo.conn)
}

// List retrieves all articles in storage order.
func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	var rows []articleRow
	if err := repo.exec(ctx).SelectContext(ctx, &rows, selectArticles); err != nil {
		return nil, fmt.Errorf("List: SelectContext: %w", err)
	}
	return toArticles(rows), nil
}

// Count returns the total number of articles.
func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.exec(ctx).GetContext(ctx, &count, `SELECT COUNT(*) FROM articles`); err != nil {
		return 0, fmt.Errorf("Count: GetContext: %w", err)
	}
	return count, nil
}

// Get retrieves a single article by ID.
func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, bool, error) {
	var row articleRow
	err := repo.exec(ctx).GetContext(ctx, &row, selectArticles+` WHERE id = ? LIMIT 1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("Get: GetContext: %w", err)
	}
	return row.toEntity(), true, nil
}

// SearchBy returns articles whose field contains value.
func (repo *ArticleRepo) SearchBy(ctx context.Context, field entity.SearchField, value string) ([]*entity.Article, error) {
	whereClause, args, err := repo.queryBuilder.BuildSearchClause(field, value)
	if err != nil {
		return nil, fmt.Errorf("SearchBy: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, search.DefaultSearchTimeout)
	defer cancel()

	var rows []articleRow
	if err := repo.exec(ctx).SelectContext(ctx, &rows, selectArticles+"\n"+whereClause, args...); err != nil {
		return nil, fmt.Errorf("SearchBy: SelectContext: %w", err)
	}
	return toArticles(rows), nil
}

// Create inserts a new article and stores the generated id on it.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
       (nickname, author, title, description, url, url_to_image,
        published_at, content, source_id, source_name)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := repo.exec(ctx).ExecContext(ctx, query,
		article.Nickname, article.Author, article.Title,
		article.Description, article.URL, article.URLToImage,
		article.PublishedAt, article.Content,
		article.SourceID, article.SourceName,
	)
	if err != nil {
		return translateError("Create", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	article.ID = id
	return nil
}

// UpdateNickname changes only the nickname column.
func (repo *ArticleRepo) UpdateNickname(ctx context.Context, id int64, nickname string) (bool, error) {
	res, err := repo.exec(ctx).ExecContext(ctx, `UPDATE articles SET nickname = ? WHERE id = ?`, nickname, id)
	if err != nil {
		return false, fmt.Errorf("UpdateNickname: ExecContext: %w", err)
	}
	return affected("UpdateNickname", res)
}

// Delete removes an article by ID.
func (repo *ArticleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := repo.exec(ctx).ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("Delete: ExecContext: %w", err)
	}
	return affected("Delete", res)
}

func affected(op string, res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: RowsAffected: %w", op, err)
	}
	return n > 0, nil
}
