package sqlite_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"articles-api/internal/domain/entity"
	"articles-api/internal/infra/adapter/persistence/sqlite"
	"articles-api/internal/infra/db"
)

/* ────────────────────────────  ヘルパ  ──────────────────────────── */

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New err=%v", err)
	}
	t.Cleanup(func() { _ = mockDB.Close() })
	return sqlx.NewDb(mockDB, db.DriverSQLite), mock
}

var articleCols = []string{
	"id", "nickname", "author", "title", "description", "url",
	"url_to_image", "published_at", "content", "source_id", "source_name",
}

func artRows(as ...*entity.Article) *sqlmock.Rows {
	rows := sqlmock.NewRows(articleCols)
	for _, a := range as {
		rows.AddRow(a.ID, a.Nickname, a.Author, a.Title, a.Description, a.URL,
			a.URLToImage, a.PublishedAt, a.Content, a.SourceID, a.SourceName)
	}
	return rows
}

func sample(id int64) *entity.Article {
	return &entity.Article{
		ID: id, Nickname: "nick", Author: "Jane", Title: "Go 1.22 released",
		Description: "desc", URL: "https://example.com", URLToImage: "https://example.com/i.png",
		PublishedAt: "2025-07-19", Content: "body", SourceID: "src", SourceName: "Example",
	}
}

/* ──────────────────────────── 1. Get ──────────────────────────── */

func TestArticleRepo_Get(t *testing.T) {
	t.Parallel()

	sqlxDB, mock := newMock(t)
	want := sample(1)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = ?")).
		WithArgs(int64(1)).
		WillReturnRows(artRows(want))

	repo := sqlite.NewArticleRepo(sqlxDB)
	got, ok, err := repo.Get(context.Background(), 1)
	if err != nil || !ok {
		t.Fatalf("Get err=%v ok=%v", err, ok)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Get mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Get_NotFound(t *testing.T) {
	t.Parallel()

	sqlxDB, mock := newMock(t)
	mock.ExpectQuery("FROM articles").WithArgs(int64(2)).WillReturnRows(sqlmock.NewRows(articleCols))

	got, ok, err := sqlite.NewArticleRepo(sqlxDB).Get(context.Background(), 2)
	if err != nil || ok || got != nil {
		t.Fatalf("Get want (nil,false,nil), got (%v,%v,%v)", got, ok, err)
	}
}

/* ──────────────────────────── 2. List ──────────────────────────── */

func TestArticleRepo_List(t *testing.T) {
	t.Parallel()

	sqlxDB, mock := newMock(t)
	mock.ExpectQuery("FROM articles").WillReturnRows(artRows(sample(1), sample(2)))

	got, err := sqlite.NewArticleRepo(sqlxDB).List(context.Background())
	if err != nil || len(got) != 2 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
}

func TestArticleRepo_List_Empty(t *testing.T) {
	t.Parallel()

	sqlxDB, mock := newMock(t)
	mock.ExpectQuery("FROM articles").WillReturnRows(sqlmock.NewRows(articleCols))

	got, err := sqlite.NewArticleRepo(sqlxDB).List(context.Background())
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("List want empty non-nil slice, got %#v err=%v", got, err)
	}
}

/* ──────────────────────────── 3. SearchBy ──────────────────────────── */

func TestArticleRepo_SearchBy(t *testing.T) {
	t.Parallel()

	sqlxDB, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE title LIKE ? ESCAPE '\'`)).
		WithArgs("%Go%").
		WillReturnRows(artRows(sample(1)))

	field, _ := entity.LookupArticleSearchField("title")
	got, err := sqlite.NewArticleRepo(sqlxDB).SearchBy(context.Background(), field, "Go")
	if err != nil || len(got) != 1 {
		t.Fatalf("SearchBy err=%v len=%d", err, len(got))
	}
}

/* ──────────────────────────── 4. Create ──────────────────────────── */

func TestArticleRepo_Create(t *testing.T) {
	t.Parallel()

	sqlxDB, mock := newMock(t)
	a := sample(0)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO articles")).
		WithArgs(a.Nickname, a.Author, a.Title, a.Description, a.URL,
			a.URLToImage, a.PublishedAt, a.Content, a.SourceID, a.SourceName).
		WillReturnResult(sqlmock.NewResult(12, 1))

	if err := sqlite.NewArticleRepo(sqlxDB).Create(context.Background(), a); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if a.ID != 12 {
		t.Fatalf("id = %d, want 12", a.ID)
	}
}

func TestArticleRepo_Create_Duplicate(t *testing.T) {
	t.Parallel()

	sqlxDB, mock := newMock(t)
	mock.ExpectExec("INSERT INTO articles").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

	err := sqlite.NewArticleRepo(sqlxDB).Create(context.Background(), sample(0))
	if !errors.Is(err, entity.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

/* ──────────────────────────── 5. UpdateNickname / Delete ──────────────────────────── */

func TestArticleRepo_UpdateNickname(t *testing.T) {
	t.Parallel()

	sqlxDB, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE articles SET nickname = ? WHERE id = ?")).
		WithArgs("n2", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := sqlite.NewArticleRepo(sqlxDB).UpdateNickname(context.Background(), 1, "n2")
	if err != nil || !ok {
		t.Fatalf("UpdateNickname err=%v ok=%v", err, ok)
	}
}

func TestArticleRepo_Delete_NotFound(t *testing.T) {
	t.Parallel()

	sqlxDB, mock := newMock(t)
	mock.ExpectExec("DELETE FROM articles").WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := sqlite.NewArticleRepo(sqlxDB).Delete(context.Background(), 9)
	if err != nil || ok {
		t.Fatalf("Delete err=%v ok=%v", err, ok)
	}
}
