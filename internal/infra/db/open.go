package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"articles-api/internal/resilience/retry"
)

// database/sql driver names registered by the imported drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,               // Maximum number of open connections
		MaxIdleConns:    10,               // Maximum number of idle connections
		ConnMaxLifetime: 1 * time.Hour,    // Maximum lifetime of a connection
		ConnMaxIdleTime: 30 * time.Minute, // Maximum idle time of a connection
	}
}

// Options selects the backend and pool settings for Open.
type Options struct {
	// Driver is "postgres" or "sqlite"
	Driver string
	URL    string
	Pool   ConnectionConfig
}

// DriverName maps a configured backend name to its database/sql driver.
func DriverName(backend string) (string, error) {
	switch strings.ToLower(backend) {
	case "postgres", "postgresql", "pgx":
		return DriverPostgres, nil
	case "sqlite", "sqlite3":
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", backend)
	}
}

// Open creates and configures a new database connection pool and verifies it with a ping.
// The ping is retried with backoff so the service can start alongside its database.
func Open(ctx context.Context, opts Options) (*sqlx.DB, error) {
	driver, err := DriverName(opts.Driver)
	if err != nil {
		return nil, err
	}
	if opts.URL == "" {
		return nil, fmt.Errorf("database url is required")
	}

	dsn := opts.URL
	if driver == DriverSQLite {
		dsn = sqliteDSN(dsn)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pool := opts.Pool
	// SQLite はファイルロックのため書き込みを単一コネクションに寄せる
	if driver == DriverSQLite {
		pool.MaxOpenConns = 1
		pool.MaxIdleConns = 1
	}
	configure(db, pool)

	if err := ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("database connection established successfully",
		slog.String("driver", driver))
	return db, nil
}

// configure applies pool settings to db.
func configure(db *sqlx.DB, cfg ConnectionConfig) {
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	slog.Info("database connection pool configured",
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))
}

// ping verifies the connection, retrying transient failures.
func ping(ctx context.Context, db *sqlx.DB) error {
	return retry.Do(ctx, retry.StartupPolicy(), "ping database", func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return db.PingContext(pingCtx)
	})
}

// sqliteDSN enables foreign key enforcement, which SQLite leaves off per connection.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}
