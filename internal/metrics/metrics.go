package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	LedgerReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_reports_generated_total",
			Help: "Number of ledger reports exported, by format",
		},
		[]string{"format"},
	)

	TransactionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "transactions_created_total",
			Help: "Number of ledger transactions recorded",
		},
	)
)
