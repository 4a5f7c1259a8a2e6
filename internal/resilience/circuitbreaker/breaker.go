// Package circuitbreaker stops the service from hammering a database that
// keeps failing. It wraps github.com/sony/gobreaker.
package circuitbreaker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"articles-api/internal/observability/metrics"
)

// ErrOpen is returned without calling the guarded function while the
// breaker is open or its half-open probes are all in flight.
var ErrOpen = errors.New("circuit breaker is open")

// Config describes when a breaker trips and how it recovers.
type Config struct {
	Name string
	// TripAfter consecutive failures open the breaker.
	TripAfter uint32
	// Probes is the number of calls let through while half-open.
	Probes uint32
	// Window resets the closed-state counts. Zero never resets them.
	Window time.Duration
	// Cooldown is how long the breaker stays open before probing.
	Cooldown time.Duration
}

// Database is the breaker guarding transaction begin.
func Database() Config {
	return Config{
		Name:      "database",
		TripAfter: 5,
		Probes:    3,
		Window:    time.Minute,
		Cooldown:  30 * time.Second,
	}
}

// Breaker guards calls to one dependency.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// New builds a breaker and publishes its state to the circuit_breaker_state gauge.
// Failures caused by the caller's context do not count against the dependency.
func New(cfg Config) *Breaker {
	tripAfter := cfg.TripAfter
	if tripAfter == 0 {
		tripAfter = 1
	}

	b := &Breaker{cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.Probes,
		Interval:    cfg.Window,
		Timeout:     cfg.Cooldown,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= tripAfter
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			metrics.SetBreakerState(name, int(to))
		},
	})}
	metrics.SetBreakerState(cfg.Name, int(gobreaker.StateClosed))
	return b
}

func (b *Breaker) Name() string { return b.cb.Name() }

func (b *Breaker) State() gobreaker.State { return b.cb.State() }

func (b *Breaker) IsOpen() bool { return b.cb.State() == gobreaker.StateOpen }

// ConsecutiveFailures is the current failure streak in the closed or half-open state.
func (b *Breaker) ConsecutiveFailures() uint32 { return b.cb.Counts().ConsecutiveFailures }

// Run calls fn through b and returns its result. A nil breaker calls fn directly.
// Rejections match ErrOpen as well as the underlying gobreaker error.
func Run[T any](b *Breaker, fn func() (T, error)) (T, error) {
	if b == nil {
		return fn()
	}

	var zero T
	res, err := b.cb.Execute(func() (interface{}, error) { return fn() })
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return zero, errors.Join(ErrOpen, err)
	case err != nil:
		return zero, err
	}
	return res.(T), nil
}
