package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/codes"

	"articles-api/internal/domain/entity"
	"articles-api/internal/observability/logging"
	"articles-api/internal/observability/metrics"
	"articles-api/internal/observability/tracing"
	"articles-api/internal/resilience/circuitbreaker"
)

// Executor is the query surface shared by *sqlx.DB and *sqlx.Tx.
// Repositories run every statement through an Executor so they work
// both inside and outside a unit of work.
type Executor interface {
	sqlx.ExtContext
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

type txKey struct{}

// session is the transaction bound to one unit of work.
// It is released exactly once; later releases are no-ops.
type session struct {
	tx       *sqlx.Tx
	released bool
}

func (s *session) commit() error {
	if s.released {
		return nil
	}
	s.released = true
	return s.tx.Commit()
}

func (s *session) rollback() error {
	if s.released {
		return nil
	}
	s.released = true
	return s.tx.Rollback()
}

// ExecutorFrom returns the transaction of the active unit of work in ctx,
// or fallback when there is none.
func ExecutorFrom(ctx context.Context, fallback Executor) Executor {
	if s, ok := ctx.Value(txKey{}).(*session); ok && !s.released {
		return s.tx
	}
	return fallback
}

// UnitOfWork scopes a group of repository calls to one transaction.
type UnitOfWork struct {
	db      *sqlx.DB
	breaker *circuitbreaker.Breaker
}

// NewUnitOfWork creates a UnitOfWork over db. breaker may be nil.
func NewUnitOfWork(db *sqlx.DB, breaker *circuitbreaker.Breaker) *UnitOfWork {
	return &UnitOfWork{db: db, breaker: breaker}
}

// Do runs fn inside a transaction.
// The transaction commits when fn returns nil and rolls back when fn returns
// an error or panics; a panic is re-raised after the rollback.
// A nested Do joins the outer transaction.
func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if s, ok := ctx.Value(txKey{}).(*session); ok && !s.released {
		return fn(ctx)
	}

	ctx, span := tracing.GetTracer().Start(ctx, "db.unit_of_work")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	logger := logging.FromContext(ctx)

	tx, err := circuitbreaker.Run(u.breaker, func() (*sqlx.Tx, error) {
		return u.db.BeginTxx(ctx, nil)
	})
	if err != nil {
		return &entity.StorageError{Op: "begin", Err: err}
	}

	s := &session{tx: tx}
	txCtx := context.WithValue(ctx, txKey{}, s)

	defer func() {
		if p := recover(); p != nil {
			if rbErr := s.rollback(); rbErr != nil {
				logger.Error("rollback after panic failed", slog.Any("error", rbErr))
			}
			metrics.RecordUnitOfWork("panic")
			panic(p)
		}
	}()

	if err := fn(txCtx); err != nil {
		metrics.RecordUnitOfWork("rollback")
		if rbErr := s.rollback(); rbErr != nil {
			logger.Error("rollback failed",
				slog.Any("error", rbErr),
				slog.Any("cause", err))
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := s.commit(); err != nil {
		metrics.RecordUnitOfWork("commit_error")
		return &entity.StorageError{Op: "commit", Err: err}
	}
	metrics.RecordUnitOfWork("commit")
	return nil
}
