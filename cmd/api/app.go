package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"articles-api/internal/config"
	pgRepo "articles-api/internal/infra/adapter/persistence/postgres"
	sqliteRepo "articles-api/internal/infra/adapter/persistence/sqlite"
	"articles-api/internal/infra/db"
	"articles-api/internal/observability/metrics"
	"articles-api/internal/observability/tracing"
	"articles-api/internal/pkg/validation"
	"articles-api/internal/repository"
	"articles-api/internal/resilience/circuitbreaker"

	artUC "articles-api/internal/usecase/article"
	childUC "articles-api/internal/usecase/child"

	hhttp "articles-api/internal/handler/http"
	harticle "articles-api/internal/handler/http/article"
	hchild "articles-api/internal/handler/http/child"
	"articles-api/internal/handler/http/middleware"
	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/requestid"
)

// app holds the wired services behind the HTTP handler.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	conn      *sqlx.DB
	breaker   *circuitbreaker.Breaker
	articles  *artUC.Service
	children  *childUC.Service
	validator *validation.Validator
	version   string
}

// newApp wires repositories for the connection's dialect into the use cases.
func newApp(cfg *config.Config, logger *slog.Logger, conn *sqlx.DB, version string) *app {
	breaker := circuitbreaker.New(circuitbreaker.Database())
	uow := db.NewUnitOfWork(conn, breaker)

	var (
		articleRepo repository.ArticleRepository
		parentRepo  repository.ParentRepository
		childRepo   repository.ChildRepository
	)
	switch conn.DriverName() {
	case db.DriverPostgres:
		articleRepo = pgRepo.NewArticleRepo(conn)
		parentRepo = pgRepo.NewParentRepo(conn)
		childRepo = pgRepo.NewChildRepo(conn)
	default:
		articleRepo = sqliteRepo.NewArticleRepo(conn)
		parentRepo = sqliteRepo.NewParentRepo(conn)
		childRepo = sqliteRepo.NewChildRepo(conn)
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		conn:     conn,
		breaker:  breaker,
		articles: &artUC.Service{Repo: articleRepo, Tx: uow},
		children: &childUC.Service{Parents: parentRepo, Children: childRepo, Tx: uow},
		validator: validation.New(validation.Limits{
			ShortMax: cfg.Validation.ShortMax,
			LongMax:  cfg.Validation.LongMax,
		}),
		version: version,
	}
}

// routes registers the resource, probe, metrics and docs endpoints.
func (a *app) routes() *http.ServeMux {
	mux := http.NewServeMux()

	harticle.Register(mux, a.articles, a.validator)
	hchild.Register(mux, a.children, a.validator)

	// ヘルスチェック・監視
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: a.conn.DB, Breaker: a.breaker, Version: a.version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: a.conn.DB})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	// Swagger UI
	mux.Handle("/swagger/", httpSwagger.WrapHandler)
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusTemporaryRedirect)
	})

	return mux
}

// handler wraps the routes with the middleware chain, outermost first:
// request ID, tracing, metrics, logging, recovery, body limit, CORS.
func (a *app) handler() http.Handler {
	cors := middleware.DefaultCORSConfig()
	if len(a.cfg.Server.CORSAllowedOrigins) > 0 {
		cors.AllowedOrigins = a.cfg.Server.CORSAllowedOrigins
	}
	cors.Logger = a.logger

	a.logger.Info("CORS enabled",
		slog.Any("allowed_origins", cors.AllowedOrigins),
		slog.Any("allowed_methods", cors.AllowedMethods),
		slog.Int("max_age", cors.MaxAge))

	return hhttp.Chain(pathutil.RecordRoute(a.routes()),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.MetricsMiddleware,
		hhttp.Logging(a.logger),
		hhttp.Recover(a.logger),
		hhttp.LimitRequestBody(a.cfg.Server.MaxBodyBytes),
		middleware.CORS(cors),
	)
}

// refreshGauges updates the row-count and pool gauges.
// Failures are logged and leave the previous values in place.
func (a *app) refreshGauges(ctx context.Context) {
	start := time.Now()
	defer func() { metrics.RecordOperationDuration("refresh_gauges", time.Since(start)) }()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if n, err := a.articles.Count(ctx); err != nil {
		a.logger.Warn("failed to count articles", slog.Any("error", err))
	} else {
		metrics.UpdateArticlesTotal(n)
	}

	if parents, children, err := a.children.Counts(ctx); err != nil {
		a.logger.Warn("failed to count parents and children", slog.Any("error", err))
	} else {
		metrics.UpdateParentsTotal(parents)
		metrics.UpdateChildrenTotal(children)
	}

	metrics.UpdateDBPoolStats(a.conn.Stats())
}
