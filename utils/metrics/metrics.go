// Package metrics provides Prometheus metrics for safeqr.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MetadataFetchTotal counts metadata fetch attempts by outcome.
	MetadataFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "safeqr",
			Name:      "metadata_fetch_total",
			Help:      "Total number of page metadata fetch attempts",
		},
		[]string{"status"},
	)

	// MetadataFetchDuration measures metadata fetch duration.
	MetadataFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "safeqr",
			Name:      "metadata_fetch_duration_seconds",
			Help:      "Duration of page metadata fetches in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// RateLimitRejectionsTotal counts requests rejected by the per-client limiter.
	RateLimitRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "safeqr",
			Name:      "rate_limit_rejections_total",
			Help:      "Total number of requests rejected by the rate limiter",
		},
	)

	// QRGeneratedTotal counts rendered QR codes.
	QRGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "safeqr",
			Name:      "qr_generated_total",
			Help:      "Total number of QR codes rendered",
		},
	)

	// HistoryOperationsTotal counts history store operations by kind and outcome.
	HistoryOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "safeqr",
			Name:      "history_operations_total",
			Help:      "Total number of generation history operations",
		},
		[]string{"operation", "status"},
	)

	// AuthEventsTotal counts session lifecycle events by kind.
	AuthEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "safeqr",
			Name:      "auth_events_total",
			Help:      "Total number of session lifecycle events",
		},
		[]string{"kind"},
	)
)

// RecordMetadataFetch records a metadata fetch attempt.
func RecordMetadataFetch(status string, duration float64) {
	MetadataFetchTotal.WithLabelValues(status).Inc()
	MetadataFetchDuration.Observe(duration)
}

// RecordRateLimitRejection records a request rejected by the limiter.
func RecordRateLimitRejection() {
	RateLimitRejectionsTotal.Inc()
}

// RecordQRGenerated records a rendered QR code.
func RecordQRGenerated() {
	QRGeneratedTotal.Inc()
}

// RecordHistoryOperation records a history store operation.
func RecordHistoryOperation(operation, status string) {
	HistoryOperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordAuthEvent records a session lifecycle event.
func RecordAuthEvent(kind string) {
	AuthEventsTotal.WithLabelValues(kind).Inc()
}
