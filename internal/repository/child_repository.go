package repository

import (
	"context"

	"articles-api/internal/domain/entity"
)

type ParentRepository interface {
	// Create inserts a parent and stores the assigned id on it.
	Create(ctx context.Context, parent *entity.Parent) error
	// Get returns (nil, false, nil) when no parent has that id.
	Get(ctx context.Context, id int64) (*entity.Parent, bool, error)
	Count(ctx context.Context) (int64, error)
}

type ChildRepository interface {
	// Create inserts a child. A missing parent returns an error matching entity.ErrForeignKey.
	Create(ctx context.Context, child *entity.Child) error
	Get(ctx context.Context, id int64) (*entity.Child, bool, error)
	List(ctx context.Context) ([]*entity.Child, error)
	ListByParent(ctx context.Context, parentID int64) ([]*entity.Child, error)
	// Update overwrites name and birth_date. It reports false when the id is absent.
	Update(ctx context.Context, child *entity.Child) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}
