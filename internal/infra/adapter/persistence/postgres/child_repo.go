package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"articles-api/internal/domain/entity"
	"articles-api/internal/infra/db"
	"articles-api/internal/repository"
)

/* ───────── Parent ───────── */

type ParentRepo struct{ conn *sqlx.DB }

func NewParentRepo(conn *sqlx.DB) repository.ParentRepository {
	return &ParentRepo{conn: conn}
}

func (repo *ParentRepo) Create(ctx context.Context, parent *entity.Parent) error {
	const query = `INSERT INTO parents DEFAULT VALUES RETURNING id`
	if err := db.ExecutorFrom(ctx, repo.conn).QueryRowContext(ctx, query).Scan(&parent.ID); err != nil {
		return translateError("Create", err)
	}
	return nil
}

func (repo *ParentRepo) Get(ctx context.Context, id int64) (*entity.Parent, bool, error) {
	const query = `SELECT id FROM parents WHERE id = $1`
	var parent entity.Parent
	err := db.ExecutorFrom(ctx, repo.conn).QueryRowContext(ctx, query, id).Scan(&parent.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("Get: %w", err)
	}
	return &parent, true, nil
}

func (repo *ParentRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM parents`
	var count int64
	if err := db.ExecutorFrom(ctx, repo.conn).QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

/* ───────── Child ───────── */

const childColumns = `id, name, birth_date, parent_id`

type ChildRepo struct{ conn *sqlx.DB }

func NewChildRepo(conn *sqlx.DB) repository.ChildRepository {
	return &ChildRepo{conn: conn}
}

func (repo *ChildRepo) exec(ctx context.Context) db.Executor {
	return db.ExecutorFrom(ctx, repo.conn)
}

func scanChild(row rowScanner) (*entity.Child, error) {
	var c entity.Child
	if err := row.Scan(&c.ID, &c.Name, &c.BirthDate, &c.ParentID); err != nil {
		return nil, err
	}
	c.BirthDate = c.BirthDate.UTC()
	return &c, nil
}

func (repo *ChildRepo) queryChildren(ctx context.Context, op, query string, args ...any) ([]*entity.Child, error) {
	rows, err := repo.exec(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	children := make([]*entity.Child, 0)
	for rows.Next() {
		child, err := scanChild(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		children = append(children, child)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return children, nil
}

// birthDate は DATE 列へ渡すため時刻部分を落とす
func birthDate(t time.Time) string {
	return t.Format(entity.BirthDateLayout)
}

func (repo *ChildRepo) Create(ctx context.Context, child *entity.Child) error {
	const query = `
INSERT INTO children (name, birth_date, parent_id)
VALUES ($1, $2, $3)
RETURNING id`
	err := repo.exec(ctx).QueryRowContext(ctx, query,
		child.Name, birthDate(child.BirthDate), child.ParentID,
	).Scan(&child.ID)
	if err != nil {
		return translateError("Create", err)
	}
	return nil
}

func (repo *ChildRepo) Get(ctx context.Context, id int64) (*entity.Child, bool, error) {
	const query = `SELECT ` + childColumns + ` FROM children WHERE id = $1`
	child, err := scanChild(repo.exec(ctx).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("Get: %w", err)
	}
	return child, true, nil
}

func (repo *ChildRepo) List(ctx context.Context) ([]*entity.Child, error) {
	const query = `SELECT ` + childColumns + ` FROM children ORDER BY id`
	return repo.queryChildren(ctx, "List", query)
}

func (repo *ChildRepo) ListByParent(ctx context.Context, parentID int64) ([]*entity.Child, error) {
	const query = `SELECT ` + childColumns + ` FROM children WHERE parent_id = $1 ORDER BY id`
	return repo.queryChildren(ctx, "ListByParent", query, parentID)
}

func (repo *ChildRepo) Update(ctx context.Context, child *entity.Child) (bool, error) {
	const query = `UPDATE children SET name = $1, birth_date = $2 WHERE id = $3`
	res, err := repo.exec(ctx).ExecContext(ctx, query, child.Name, birthDate(child.BirthDate), child.ID)
	if err != nil {
		return false, fmt.Errorf("Update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Update: RowsAffected: %w", err)
	}
	return n > 0, nil
}

func (repo *ChildRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM children WHERE id = $1`
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

func (repo *ChildRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM children`
	var count int64
	if err := repo.exec(ctx).QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
