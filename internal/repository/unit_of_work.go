package repository

import "context"

// UnitOfWork runs fn inside one storage transaction.
// Repository calls made with the context passed to fn join that transaction.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
