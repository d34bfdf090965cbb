package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ServiceMetrics records the outcome of service operations.
type ServiceMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation, service string)
	RecordOperationSuccess(ctx context.Context, operation, service string)
	RecordOperationFailure(ctx context.Context, operation, service string)
	RecordOperationDuration(ctx context.Context, operation, service string, duration time.Duration)
	// RecordAccuracy observes a computed accuracy percentage for a game mode.
	RecordAccuracy(ctx context.Context, mode string, accuracy float64)
}

// PrometheusMetrics implements ServiceMetrics on a prometheus registry.
type PrometheusMetrics struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	accuracy  *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the service collectors on reg under namespace.
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) *PrometheusMetrics {
	factory := promauto.With(reg)
	labels := []string{"service", "operation"}

	return &PrometheusMetrics{
		attempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_attempts_total",
			Help:      "Number of service operations started.",
		}, labels),
		successes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_success_total",
			Help:      "Number of service operations that completed without error.",
		}, labels),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Number of service operations that returned an error or panicked.",
		}, labels),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Service operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, labels),
		accuracy: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "computed_accuracy_percent",
			Help:      "Accuracy computed for listed pinned scores.",
			Buckets:   []float64{50, 60, 70, 80, 85, 90, 93, 95, 97, 98, 99, 99.5, 100},
		}, []string{"mode"}),
	}
}

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation, service string) {
	m.attempts.WithLabelValues(service, operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(_ context.Context, operation, service string) {
	m.successes.WithLabelValues(service, operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation, service string) {
	m.failures.WithLabelValues(service, operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation, service string, duration time.Duration) {
	m.duration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordAccuracy(_ context.Context, mode string, accuracy float64) {
	m.accuracy.WithLabelValues(mode).Observe(accuracy)
}

// NoOpMetrics discards everything.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string, string)                 {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string, string)                 {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string, string)                 {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}
func (NoOpMetrics) RecordAccuracy(context.Context, string, float64)                        {}

var (
	_ ServiceMetrics = (*PrometheusMetrics)(nil)
	_ ServiceMetrics = NoOpMetrics{}
)
