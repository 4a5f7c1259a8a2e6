// Package article provides use cases for managing article entities.
// It implements business logic for creating, searching, renaming and deleting articles
// and maps storage failures onto the domain error taxonomy.
package article

import (
	"errors"

	"articles-api/internal/domain/entity"
)

// Client-facing messages.
const (
	MsgArticleNotFound = "Article not found"
	MsgArticleExists   = "Article already exists"
	MsgArticleDeleted  = "Article Deleted Successfully"
)

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound matches every not-found error returned by Service.
	ErrArticleNotFound = entity.ErrNotFound

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = &entity.ValidationError{Field: "id", Message: "must be a positive integer"}

	// ErrDuplicateArticle matches a create rejected by the (title, author) constraint.
	ErrDuplicateArticle = entity.ErrConflict
)

func notFound(id int64) error {
	return &entity.NotFoundError{Message: MsgArticleNotFound, ID: id}
}

// storageError wraps err unless it already belongs to the domain taxonomy.
func storageError(op string, err error) error {
	var se *entity.StorageError
	if errors.As(err, &se) {
		return err
	}
	if errors.Is(err, entity.ErrValidationFailed) || errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrConflict) {
		return err
	}
	return &entity.StorageError{Op: op, Err: err}
}
