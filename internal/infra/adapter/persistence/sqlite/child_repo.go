package sqlite

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

// ParentRepo implements the ParentRepository interface using SQLite.
type ParentRepo struct{ conn *sqlx.DB }

func NewParentRepo(conn *sqlx.DB) repository.ParentRepository {
	return &ParentRepo{conn: conn}
}

func (repo *ParentRepo) Create(ctx context.Context, parent *entity.Parent) error {
	res, err := db.ExecutorFrom(ctx, repo.conn).ExecContext(ctx, `INSERT INTO parents DEFAULT VALUES`)
	if err != nil {
		return translateError("Create", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	parent.ID = id
	return nil
}

func (repo *ParentRepo) Get(ctx context.Context, id int64) (*entity.Parent, bool, error) {
	var parent entity.Parent
	err := db.ExecutorFrom(ctx, repo.conn).GetContext(ctx, &parent.ID, `SELECT id FROM parents WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("Get: GetContext: %w", err)
	}
	return &parent, true, nil
}

func (repo *ParentRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := db.ExecutorFrom(ctx, repo.conn).GetContext(ctx, &count, `SELECT COUNT(*) FROM parents`); err != nil {
		return 0, fmt.Errorf("Count: GetContext: %w", err)
	}
	return count, nil
}

/* ───────── Child ───────── */

// childRow is the sqlx mapping of one children row. birth_date is stored as YYYY-MM-DD text.
type childRow struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	BirthDate string `db:"birth_date"`
	ParentID  int64  `db:"parent_id"`
}

func (r childRow) toEntity() (*entity.Child, error) {
	birth, err := time.Parse(entity.BirthDateLayout, r.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("parse birth_date of child %d: %w", r.ID, err)
	}
	return &entity.Child{ID: r.ID, Name: r.Name, BirthDate: birth, ParentID: r.ParentID}, nil
}

func toChildren(op string, rows []childRow) ([]*entity.Child, error) {
	children := make([]*entity.Child, 0, len(rows))
	for _, r := range rows {
		c, err := r.toEntity()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		children = append(children, c)
	}
	return children, nil
}

const selectChildren = `SELECT id, name, birth_date, parent_id FROM children`

// ChildRepo implements the ChildRepository interface using SQLite.
type ChildRepo struct{ conn *sqlx.DB }

func NewChildRepo(conn *sqlx.DB) repository.ChildRepository {
	return &ChildRepo{conn: conn}
}

func (repo *ChildRepo) exec(ctx context.Context) db.Executor {
	return db.ExecutorFrom(ctx, repo.conn)
}

func (repo *ChildRepo) Create(ctx context.Context, child *entity.Child) error {
	const query = `INSERT INTO children (name, birth_date, parent_id) VALUES (?, ?, ?)`
	res, err := repo.exec(ctx).ExecContext(ctx, query,
		child.Name, child.BirthDate.Format(entity.BirthDateLayout), child.ParentID)
	if err != nil {
		return translateError("Create", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	child.ID = id
	return nil
}

func (repo *ChildRepo) Get(ctx context.Context, id int64) (*entity.Child, bool, error) {
	var row childRow
	err := repo.exec(ctx).GetContext(ctx, &row, selectChildren+` WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("Get: GetContext: %w", err)
	}
	child, err := row.toEntity()
	if err != nil {
		return nil, false, fmt.Errorf("Get: %w", err)
	}
	return child, true, nil
}

func (repo *ChildRepo) List(ctx context.Context) ([]*entity.Child, error) {
	var rows []childRow
	if err := repo.exec(ctx).SelectContext(ctx, &rows, selectChildren+` ORDER BY id`); err != nil {
		return nil, fmt.Errorf("List: SelectContext: %w", err)
	}
	return toChildren("List", rows)
}

func (repo *ChildRepo) ListByParent(ctx context.Context, parentID int64) ([]*entity.Child, error) {
	var rows []childRow
	if err := repo.exec(ctx).SelectContext(ctx, &rows, selectChildren+` WHERE parent_id = ? ORDER BY id`, parentID); err != nil {
		return nil, fmt.Errorf("ListByParent: SelectContext: %w", err)
	}
	return toChildren("ListByParent", rows)
}

func (repo *ChildRepo) Update(ctx context.Context, child *entity.Child) (bool, error) {
	const query = `UPDATE children SET name = ?, birth_date = ? WHERE id = ?`
	res, err := repo.exec(ctx).ExecContext(ctx, query,
		child.Name, child.BirthDate.Format(entity.BirthDateLayout), child.ID)
	if err != nil {
		return false, fmt.Errorf("Update: ExecContext: %w", err)
	}
	return affected("Update", res)
}

func (repo *ChildRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := repo.exec(ctx).ExecContext(ctx, `DELETE FROM children WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("Delete: ExecContext: %w", err)
	}
	return affected("Delete", res)
}

func (repo *ChildRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.exec(ctx).GetContext(ctx, &count, `SELECT COUNT(*) FROM children`); err != nil {
		return 0, fmt.Errorf("Count: GetContext: %w", err)
	}
	return count, nil
}
