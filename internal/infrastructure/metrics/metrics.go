package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Stream metrics
	RecordsApplied *prometheus.CounterVec
	RecordsDropped *prometheus.CounterVec
	RowsSkipped    prometheus.Counter

	// Batch metrics
	BatchesProcessed prometheus.Counter
	BatchDuration    prometheus.Histogram

	// Account metrics
	AccountsSeen   prometheus.Counter
	AccountsLocked prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RecordsApplied: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payflow_records_applied_total",
				Help: "Total number of applied transaction records by type",
			},
			[]string{"type"},
		),
		RecordsDropped: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payflow_records_dropped_total",
				Help: "Total number of dropped transaction records by reason",
			},
			[]string{"reason"},
		),
		RowsSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payflow_rows_skipped_total",
			Help: "Total number of malformed input rows skipped before processing",
		}),

		BatchesProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payflow_batches_processed_total",
			Help: "Total number of processed transaction batches",
		}),
		BatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "payflow_batch_duration_seconds",
			Help:    "Duration of batch processing runs",
			Buckets: prometheus.DefBuckets,
		}),

		AccountsSeen: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payflow_accounts_seen_total",
			Help: "Total number of client accounts materialized across batches",
		}),
		AccountsLocked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payflow_accounts_locked_total",
			Help: "Total number of accounts locked by a chargeback",
		}),
	}
}
