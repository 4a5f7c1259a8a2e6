package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"articles-api/internal/config"
	"articles-api/internal/infra/db"
	"articles-api/internal/observability/logging"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create (or with --down drop) the articles, parents and children tables",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
		slog.SetDefault(logger)

		conn, err := openDatabase(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := conn.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}()

		if migrateDown {
			if err := db.MigrateDown(conn); err != nil {
				return fmt.Errorf("migrate down: %w", err)
			}
			logger.Warn("schema dropped")
			return nil
		}
		if err := db.MigrateUp(conn); err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		logger.Info("schema up to date")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "drop every table (deletes all data)")
}

// openDatabase opens the configured backend with its pool settings.
func openDatabase(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	return db.Open(ctx, db.Options{
		Driver: cfg.Database.Driver,
		URL:    cfg.Database.URL,
		Pool: db.ConnectionConfig{
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		},
	})
}
