package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"articles-api/internal/config"
	"articles-api/internal/infra/db"
	"articles-api/internal/observability/logging"
	"articles-api/internal/observability/tracing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the schema and start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Tracing.Enabled {
		shutdownTracing, err := tracing.InitProvider(cfg.Tracing.ServiceName)
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(flushCtx); err != nil {
				logger.Error("tracer shutdown failed", slog.Any("error", err))
			}
		}()
		logger.Info("tracing enabled", slog.String("service_name", cfg.Tracing.ServiceName))
	}

	conn, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()
	if err := db.MigrateUp(conn); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	version := getVersion()
	a := newApp(cfg, logger, conn, version)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           a.handler(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return a.runGaugeRefresher(gctx, cfg.Metrics.RefreshSchedule)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}

// runGaugeRefresher refreshes the gauges once, then on schedule until ctx ends.
func (a *app) runGaugeRefresher(ctx context.Context, schedule string) error {
	a.refreshGauges(ctx)

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { a.refreshGauges(ctx) }); err != nil {
		return fmt.Errorf("failed to add gauge refresh job: %w", err)
	}
	c.Start()
	a.logger.Info("gauge refresh started", slog.String("schedule", schedule))

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
