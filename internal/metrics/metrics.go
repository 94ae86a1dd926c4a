package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unitsync_http_requests_total",
			Help: "Total HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "unitsync_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	PaymentsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unitsync_payments_recorded_total",
			Help: "Payments recorded, by method",
		},
		[]string{"method"},
	)

	SubmissionsReviewedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unitsync_submissions_reviewed_total",
			Help: "Payment submissions reviewed, by outcome",
		},
		[]string{"outcome"},
	)

	LedgerEntriesGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "unitsync_ledger_entries_generated_total",
			Help: "Ledger entries created by the monthly generator",
		},
	)
)
