// Package child provides use cases for parents and the child profiles that reference them.
package child

import (
	"errors"

	"articles-api/internal/domain/entity"
)

const (
	MsgParentNotFound = "Parent not found"
	MsgChildNotFound  = "Child not found"
	MsgChildDeleted   = "Child Deleted Successfully"
)

// ErrInvalidID indicates a non-positive parent or child id.
var ErrInvalidID = &entity.ValidationError{Field: "id", Message: "must be a positive integer"}

func parentNotFound(id int64) error {
	return &entity.NotFoundError{Message: MsgParentNotFound, ID: id}
}

func childNotFound(id int64) error {
	return &entity.NotFoundError{Message: MsgChildNotFound, ID: id}
}

func storageError(op string, err error) error {
	var se *entity.StorageError
	if errors.As(err, &se) || errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrValidationFailed) {
		return err
	}
	return &entity.StorageError{Op: op, Err: err}
}
