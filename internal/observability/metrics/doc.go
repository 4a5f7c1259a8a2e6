// Package metrics holds the Prometheus collectors served on /metrics.
//
// Collectors register with the default registry through promauto. HTTP
// collectors are fed by the metrics middleware; row counts and pool gauges
// are refreshed by the serve command on the configured cron schedule.
package metrics
