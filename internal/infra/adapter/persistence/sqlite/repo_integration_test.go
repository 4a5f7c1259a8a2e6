package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"articles-api/internal/domain/entity"
	"articles-api/internal/infra/adapter/persistence/sqlite"
	"articles-api/internal/infra/db"
)

// openMemory はマイグレーション済みのインメモリ DB を返す
func openMemory(t *testing.T) *sqlx.DB {
	t.Helper()
	conn, err := db.Open(context.Background(), db.Options{
		Driver: "sqlite",
		URL:    ":memory:",
		Pool:   db.DefaultConnectionConfig(),
	})
	if err != nil {
		t.Fatalf("Open err=%v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	if err := db.MigrateUp(conn); err != nil {
		t.Fatalf("MigrateUp err=%v", err)
	}
	return conn
}

func TestIntegration_ArticleLifecycle(t *testing.T) {
	conn := openMemory(t)
	repo := sqlite.NewArticleRepo(conn)
	ctx := context.Background()

	a := sample(0)
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if a.ID == 0 {
		t.Fatal("Create did not assign id")
	}

	// 同じ (title, author) は一意制約で拒否される
	dup := sample(0)
	dup.Nickname = "other"
	if err := repo.Create(ctx, dup); !errors.Is(err, entity.ErrConflict) {
		t.Fatalf("duplicate Create want ErrConflict, got %v", err)
	}

	// 大文字小文字が違えば別記事
	other := sample(0)
	other.Author = "jane"
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("Create (different author) err=%v", err)
	}

	field, _ := entity.LookupArticleSearchField("title")
	found, err := repo.SearchBy(ctx, field, "1.22")
	if err != nil || len(found) != 2 {
		t.Fatalf("SearchBy err=%v len=%d", err, len(found))
	}
	found, err = repo.SearchBy(ctx, field, "%")
	if err != nil || len(found) != 0 {
		t.Fatalf("SearchBy(%%) must match literally, err=%v len=%d", err, len(found))
	}

	ok, err := repo.UpdateNickname(ctx, a.ID, "renamed")
	if err != nil || !ok {
		t.Fatalf("UpdateNickname err=%v ok=%v", err, ok)
	}
	got, ok, err := repo.Get(ctx, a.ID)
	if err != nil || !ok || got.Nickname != "renamed" || got.Title != a.Title {
		t.Fatalf("Get after update = %+v ok=%v err=%v", got, ok, err)
	}

	ok, err = repo.Delete(ctx, a.ID)
	if err != nil || !ok {
		t.Fatalf("Delete err=%v ok=%v", err, ok)
	}
	if _, ok, _ := repo.Get(ctx, a.ID); ok {
		t.Fatal("article still present after delete")
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("Count = %d, want 1", n)
	}
}

func TestIntegration_ChildrenRequireParent(t *testing.T) {
	conn := openMemory(t)
	parents := sqlite.NewParentRepo(conn)
	children := sqlite.NewChildRepo(conn)
	ctx := context.Background()

	p := &entity.Parent{}
	if err := parents.Create(ctx, p); err != nil {
		t.Fatalf("parent Create err=%v", err)
	}

	birth := time.Date(2015, 4, 1, 0, 0, 0, 0, time.UTC)
	c := &entity.Child{Name: "Alice", BirthDate: birth, ParentID: p.ID}
	if err := children.Create(ctx, c); err != nil {
		t.Fatalf("child Create err=%v", err)
	}

	orphan := &entity.Child{Name: "Bob", BirthDate: birth, ParentID: p.ID + 100}
	if err := children.Create(ctx, orphan); !errors.Is(err, entity.ErrForeignKey) {
		t.Fatalf("orphan Create want ErrForeignKey, got %v", err)
	}

	list, err := children.ListByParent(ctx, p.ID)
	if err != nil || len(list) != 1 || !list[0].BirthDate.Equal(birth) {
		t.Fatalf("ListByParent = %+v err=%v", list, err)
	}
}

func TestIntegration_UnitOfWorkRollback(t *testing.T) {
	conn := openMemory(t)
	repo := sqlite.NewArticleRepo(conn)
	uow := db.NewUnitOfWork(conn, nil)
	ctx := context.Background()

	errAbort := errors.New("abort")
	err := uow.Do(ctx, func(ctx context.Context) error {
		if err := repo.Create(ctx, sample(0)); err != nil {
			return err
		}
		return errAbort
	})
	if !errors.Is(err, errAbort) {
		t.Fatalf("Do err=%v", err)
	}
	if n, _ := repo.Count(ctx); n != 0 {
		t.Fatalf("Count = %d after rollback, want 0", n)
	}
}
