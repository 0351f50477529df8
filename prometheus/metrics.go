package prometheus

import (
	"strconv"
	"time"

	"timesheet-service/pkg/config"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Aggregation metrics
	AggregationCounter      *prometheus.CounterVec
	AggregationErrorCounter *prometheus.CounterVec

	// Write-path metrics
	TimeLogWriteCounter *prometheus.CounterVec
	PunchCounter        *prometheus.CounterVec

	// Database operation metrics
	DBOperationHistogram *prometheus.HistogramVec

	// Request metrics
	RequestDurationHistogram *prometheus.HistogramVec
	APIRequestCounter        *prometheus.CounterVec
	APIErrorCounter          *prometheus.CounterVec

	// Namespace prefix for metrics
	namespace string
)

// InitMetrics initializes all Prometheus metrics
func InitMetrics(cfg *config.Config) {
	namespace = cfg.Metrics.Prefix

	AggregationCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregation_total",
			Help:      "Total number of timesheet aggregation runs by scope",
		},
		[]string{"scope"},
	)

	AggregationErrorCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregation_errors_total",
			Help:      "Total number of failed aggregation runs by reason",
		},
		[]string{"reason"},
	)

	TimeLogWriteCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "time_log_writes_total",
			Help:      "Total number of time log inserts and updates",
		},
		[]string{"operation"},
	)

	PunchCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attendance_punch_total",
			Help:      "Total number of attendance punches by direction",
		},
		[]string{"direction"},
	)

	DBOperationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_operation_duration_seconds",
			Help:      "Duration of database operations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	RequestDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	APIRequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "path"},
	)

	APIErrorCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_errors_total",
			Help:      "Total number of API error responses",
		},
		[]string{"method", "path", "status"},
	)
}

// MetricsMiddleware tracks request metrics
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			APIRequestCounter.With(prometheus.Labels{
				"method": c.Request().Method,
				"path":   c.Path(),
			}).Inc()

			// Process the request
			err := next(c)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)
			RequestDurationHistogram.With(prometheus.Labels{
				"method": c.Request().Method,
				"path":   c.Path(),
				"status": status,
			}).Observe(duration)

			if c.Response().Status >= 400 {
				APIErrorCounter.With(prometheus.Labels{
					"method": c.Request().Method,
					"path":   c.Path(),
					"status": status,
				}).Inc()
			}

			return err
		}
	}
}

// HandlerFunc returns a HTTP handler for the metrics endpoint
func HandlerFunc() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}

// TrackDBOperation returns a function that tracks database operation duration
func TrackDBOperation(operation string) func(time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DBOperationHistogram.With(prometheus.Labels{
			"operation": operation,
		}).Observe(duration)
	}
}

// RecordAggregation increments the aggregation counter for a scope
func RecordAggregation(scope string) {
	AggregationCounter.WithLabelValues(scope).Inc()
}

// RecordAggregationError increments the aggregation error counter
func RecordAggregationError(reason string) {
	AggregationErrorCounter.WithLabelValues(reason).Inc()
}

// RecordTimeLogWrite increments the time log write counter
func RecordTimeLogWrite(operation string) {
	TimeLogWriteCounter.WithLabelValues(operation).Inc()
}

// RecordPunch increments the attendance punch counter
func RecordPunch(direction string) {
	PunchCounter.WithLabelValues(direction).Inc()
}
