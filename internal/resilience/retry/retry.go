// Package retry re-runs database operations that fail for transient reasons,
// such as the server still starting or a SQLite file being locked.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// Policy bounds how often and how long an operation is retried.
type Policy struct {
	// Attempts is the total number of calls, including the first one.
	Attempts int
	// Base is the wait after the first failure. It doubles on every further failure.
	Base time.Duration
	// Max caps a single wait before jitter is added.
	Max time.Duration
	// Jitter adds up to this fraction of the wait at random (0.0 to 1.0).
	Jitter float64
}

// StartupPolicy suits the ping issued while the service starts next to its database.
func StartupPolicy() Policy {
	return Policy{
		Attempts: 5,
		Base:     200 * time.Millisecond,
		Max:      3 * time.Second,
		Jitter:   0.1,
	}
}

// ExhaustedError is returned when every attempt failed with a transient error.
type ExhaustedError struct {
	Op       string
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s: gave up after %d attempts: %v", e.Op, e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error { return e.Err }

// randFloat is replaced in tests to make jitter deterministic.
var randFloat = rand.Float64

// Do calls fn until it succeeds, fails permanently, the policy is exhausted
// or ctx ends. Permanent errors are returned unchanged.
func Do(ctx context.Context, p Policy, op string, fn func(ctx context.Context) error) error {
	if p.Attempts < 1 {
		p.Attempts = 1
	}

	var err error
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		if err = fn(ctx); err == nil {
			if attempt > 1 {
				slog.Info("operation recovered", slog.String("op", op), slog.Int("attempt", attempt))
			}
			return nil
		}
		if !Transient(err) {
			return err
		}
		if attempt == p.Attempts {
			break
		}

		wait := p.wait(attempt)
		slog.Warn("transient failure, retrying",
			slog.String("op", op),
			slog.Int("attempt", attempt),
			slog.Int("attempts", p.Attempts),
			slog.Duration("wait", wait),
			slog.Any("error", err))

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%s: %w", op, ctx.Err())
		}
	}
	return &ExhaustedError{Op: op, Attempts: p.Attempts, Err: err}
}

// wait returns the pause after the given failed attempt (1-based).
func (p Policy) wait(attempt int) time.Duration {
	d := p.Base << (attempt - 1)
	if d <= 0 || (p.Max > 0 && d > p.Max) {
		d = p.Max
	}
	if p.Jitter > 0 {
		j := p.Jitter
		if j > 1 {
			j = 1
		}
		d += time.Duration(randFloat() * j * float64(d))
	}
	return d
}

// Transient reports whether err is worth another attempt.
// Cancellation is never transient.
func Transient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Postgres not reachable yet (server starting, DNS not ready)
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ETIMEDOUT) ||
		errors.Is(err, syscall.ENETUNREACH)
}
