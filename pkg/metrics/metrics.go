// Package metrics provides Prometheus metrics for the briar screening core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScreeningsTotal tracks customer screenings by resulting risk tier
	ScreeningsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "briar",
			Subsystem: "screening",
			Name:      "customers_total",
			Help:      "Total number of customers screened by risk tier",
		},
		[]string{"risk_tier"},
	)

	// ScreeningDuration tracks screening duration in seconds
	ScreeningDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "briar",
			Subsystem: "screening",
			Name:      "duration_seconds",
			Help:      "Duration of customer screenings in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	// RuleEvaluationFailures tracks rules skipped due to evaluation errors
	RuleEvaluationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "briar",
			Subsystem: "rules",
			Name:      "evaluation_failures_total",
			Help:      "Total number of per-rule evaluation failures (rule skipped, screening continued)",
		},
		[]string{"rule_id"},
	)

	// ConfigReloadsTotal tracks rule configuration reloads by outcome
	ConfigReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "briar",
			Subsystem: "rules",
			Name:      "config_reloads_total",
			Help:      "Total number of rule configuration reloads by outcome",
		},
		[]string{"status"},
	)

	// WatchlistEntriesScreened tracks watchlist entries evaluated per screening
	WatchlistEntriesScreened = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "briar",
			Subsystem: "screening",
			Name:      "watchlist_entries_total",
			Help:      "Total number of watchlist entries evaluated",
		},
	)
)
