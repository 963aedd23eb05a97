package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Admin authentication metrics
	AuthAttemptsCounter prometheus.Counter
	AuthSuccessCounter  prometheus.Counter

	// Property metrics
	PropertyOperationsCounter prometheus.CounterVec
	PropertyViewsCounter      prometheus.Counter

	// Image storage metrics
	ImageUploadsCounter      prometheus.Counter
	ImageDeleteErrorsCounter prometheus.Counter
)

// InitMetrics registers all collectors with the default registry.
func InitMetrics() {
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "realestate_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "realestate_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	AuthAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "realestate_admin_auth_attempts_total",
			Help: "Total number of admin login attempts",
		},
	)

	AuthSuccessCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "realestate_admin_auth_success_total",
			Help: "Total number of successful admin logins",
		},
	)

	PropertyOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "realestate_property_operations_total",
			Help: "Total number of property operations",
		},
		[]string{"operation"},
	)

	PropertyViewsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "realestate_property_views_total",
			Help: "Total number of property detail views",
		},
	)

	ImageUploadsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "realestate_image_uploads_total",
			Help: "Total number of property image uploads",
		},
	)

	ImageDeleteErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "realestate_image_delete_errors_total",
			Help: "Total number of best-effort image deletions that failed",
		},
	)
}

// RecordPropertyOperation increments the counter for property operations.
func RecordPropertyOperation(operation string) {
	PropertyOperationsCounter.WithLabelValues(operation).Inc()
}
