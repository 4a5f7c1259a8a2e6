package child

import (
	"context"
	"errors"
	"time"

	"articles-api/internal/domain/entity"
	"articles-api/internal/repository"
)

// ParentWithChildren is a parent together with every child that references it.
type ParentWithChildren struct {
	Parent   *entity.Parent
	Children []*entity.Child
}

// CreateInput holds the fields of a new child. BirthDate is already parsed.
type CreateInput struct {
	Name      string
	BirthDate time.Time
	ParentID  int64
}

// UpdateInput holds the optional fields of a child update. Nil fields are kept.
type UpdateInput struct {
	Name      *string
	BirthDate *time.Time
}

// Service provides parent and child use cases.
type Service struct {
	Parents  repository.ParentRepository
	Children repository.ChildRepository
	Tx       repository.UnitOfWork
}

func (s *Service) do(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.Tx == nil {
		return fn(ctx)
	}
	return s.Tx.Do(ctx, fn)
}

// CreateParent stores a new parent.
func (s *Service) CreateParent(ctx context.Context) (*entity.Parent, error) {
	parent := &entity.Parent{}
	if err := s.do(ctx, func(ctx context.Context) error {
		return s.Parents.Create(ctx, parent)
	}); err != nil {
		return nil, storageError("create parent", err)
	}
	return parent, nil
}

// GetParent returns the parent and its children ordered by id.
func (s *Service) GetParent(ctx context.Context, id int64) (*ParentWithChildren, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	var out *ParentWithChildren
	err := s.do(ctx, func(ctx context.Context) error {
		p, found, err := s.Parents.Get(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return parentNotFound(id)
		}
		children, err := s.Children.ListByParent(ctx, id)
		if err != nil {
			return err
		}
		out = &ParentWithChildren{Parent: p, Children: nonNil(children)}
		return nil
	})
	if err != nil {
		return nil, storageError("get parent", err)
	}
	return out, nil
}

// ListChildrenOfParent returns the children of an existing parent.
func (s *Service) ListChildrenOfParent(ctx context.Context, parentID int64) ([]*entity.Child, error) {
	pc, err := s.GetParent(ctx, parentID)
	if err != nil {
		return nil, err
	}
	return pc.Children, nil
}

// CreateChild stores a child. A missing parent yields a NotFoundError.
func (s *Service) CreateChild(ctx context.Context, in CreateInput) (*entity.Child, error) {
	if in.ParentID <= 0 {
		return nil, &entity.ValidationError{Field: "parent_id", Message: "must be a positive integer"}
	}

	c := &entity.Child{Name: in.Name, BirthDate: in.BirthDate, ParentID: in.ParentID}
	err := s.do(ctx, func(ctx context.Context) error {
		return s.Children.Create(ctx, c)
	})
	if errors.Is(err, entity.ErrForeignKey) {
		return nil, parentNotFound(in.ParentID)
	}
	if err != nil {
		return nil, storageError("create child", err)
	}
	return c, nil
}

// ListChildren returns every child ordered by id.
func (s *Service) ListChildren(ctx context.Context) ([]*entity.Child, error) {
	var children []*entity.Child
	err := s.do(ctx, func(ctx context.Context) error {
		var err error
		children, err = s.Children.List(ctx)
		return err
	})
	if err != nil {
		return nil, storageError("list children", err)
	}
	return nonNil(children), nil
}

// GetChild returns a child by id.
func (s *Service) GetChild(ctx context.Context, id int64) (*entity.Child, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	var c *entity.Child
	err := s.do(ctx, func(ctx context.Context) error {
		got, found, err := s.Children.Get(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return childNotFound(id)
		}
		c = got
		return nil
	})
	if err != nil {
		return nil, storageError("get child", err)
	}
	return c, nil
}

// UpdateChild applies the non-nil fields of in and returns the stored child.
func (s *Service) UpdateChild(ctx context.Context, id int64, in UpdateInput) (*entity.Child, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	var c *entity.Child
	err := s.do(ctx, func(ctx context.Context) error {
		got, found, err := s.Children.Get(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return childNotFound(id)
		}
		if in.Name != nil {
			got.Name = *in.Name
		}
		if in.BirthDate != nil {
			got.BirthDate = *in.BirthDate
		}
		updated, err := s.Children.Update(ctx, got)
		if err != nil {
			return err
		}
		if !updated {
			return childNotFound(id)
		}
		c = got
		return nil
	})
	if err != nil {
		return nil, storageError("update child", err)
	}
	return c, nil
}

// DeleteChild removes a child by id.
func (s *Service) DeleteChild(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}

	err := s.do(ctx, func(ctx context.Context) error {
		deleted, err := s.Children.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return childNotFound(id)
		}
		return nil
	})
	if err != nil {
		return storageError("delete child", err)
	}
	return nil
}

// Counts returns the number of stored parents and children.
func (s *Service) Counts(ctx context.Context) (parents, children int64, err error) {
	if parents, err = s.Parents.Count(ctx); err != nil {
		return 0, 0, storageError("count parents", err)
	}
	if children, err = s.Children.Count(ctx); err != nil {
		return 0, 0, storageError("count children", err)
	}
	return parents, children, nil
}

func nonNil(children []*entity.Child) []*entity.Child {
	if children == nil {
		return []*entity.Child{}
	}
	return children
}
