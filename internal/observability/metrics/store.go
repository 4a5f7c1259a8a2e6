package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Row counts, refreshed on a schedule by the serve command.
var (
	ArticlesTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "articles_total",
		Help: "Number of stored articles",
	})
	ParentsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "parents_total",
		Help: "Number of stored parents",
	})
	ChildrenTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "children_total",
		Help: "Number of stored children",
	})
)

var (
	ArticleConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "article_conflicts_total",
		Help: "Article creates rejected because (title, author) already exists",
	})

	ArticleSearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "article_searches_total",
		Help: "Article substring searches by field",
	}, []string{"field"})

	DBQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Duration of named database operations in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
	}, []string{"operation"})

	UnitOfWorkTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "db_unit_of_work_total",
		Help: "Finished units of work by outcome",
	}, []string{"outcome"})

	DBConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connections_active",
		Help: "Database connections currently in use",
	})
	DBConnectionsIdle = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connections_idle",
		Help: "Idle database connections",
	})

	// BreakerState is 0 when closed, 1 when half-open and 2 when open.
	BreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "circuit_breaker_state",
		Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
	}, []string{"name"})
)

func UpdateArticlesTotal(n int64) { ArticlesTotal.Set(float64(n)) }

func UpdateParentsTotal(n int64) { ParentsTotal.Set(float64(n)) }

func UpdateChildrenTotal(n int64) { ChildrenTotal.Set(float64(n)) }

func RecordArticleConflict() { ArticleConflictsTotal.Inc() }

// RecordArticleSearch counts a search on field. field must be one of the
// fixed search field names to keep label cardinality bounded.
func RecordArticleSearch(field string) {
	ArticleSearchesTotal.WithLabelValues(field).Inc()
}

// RecordUnitOfWork counts a unit of work ending in outcome:
// "commit", "commit_error", "rollback" or "panic".
func RecordUnitOfWork(outcome string) {
	UnitOfWorkTotal.WithLabelValues(outcome).Inc()
}

func RecordOperationDuration(operation string, d time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// UpdateDBPoolStats copies pool usage from database/sql into the pool gauges.
func UpdateDBPoolStats(stats sql.DBStats) {
	DBConnectionsActive.Set(float64(stats.InUse))
	DBConnectionsIdle.Set(float64(stats.Idle))
}

// SetBreakerState records the state of the named breaker.
func SetBreakerState(name string, state int) {
	BreakerState.WithLabelValues(name).Set(float64(state))
}
