package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"articles-api/internal/domain/entity"
)

// PostgreSQL SQLSTATE codes
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// translateError maps constraint violations onto domain errors.
// Everything else is wrapped with op and returned as is.
func translateError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return &entity.ConflictError{Message: "duplicate " + pgErr.ConstraintName, Err: err}
		case foreignKeyViolation:
			return fmt.Errorf("%s: %w: %w", op, entity.ErrForeignKey, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
