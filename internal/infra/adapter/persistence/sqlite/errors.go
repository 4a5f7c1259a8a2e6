package sqlite

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"articles-api/internal/domain/entity"
)

// translateError maps constraint violations onto domain errors.
func translateError(op string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return &entity.ConflictError{Message: "duplicate key", Err: err}
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%s: %w: %w", op, entity.ErrForeignKey, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
