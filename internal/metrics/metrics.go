// Package metrics exports analytics and HTTP telemetry to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultNamespace prefixes every metric name
const DefaultNamespace = "habithub"

// register adds c to reg. When an identical collector is already
// registered, the existing one is returned instead.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, err
	}
	return c, nil
}

// PrometheusObserver records analytics computation latency and failures.
// It satisfies service.Observer.
type PrometheusObserver struct {
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

// NewPrometheusObserver registers the analytics computation metrics
func NewPrometheusObserver(namespace string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "analytics",
		Name:      "computation_duration_seconds",
		Help:      "Latency of analytics computations, including record loading.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"}))
	if err != nil {
		return nil, fmt.Errorf("register analytics metric: %w", err)
	}

	errs, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "analytics",
		Name:      "computation_errors_total",
		Help:      "Count of failed analytics computations.",
	}, []string{"operation"}))
	if err != nil {
		return nil, fmt.Errorf("register analytics metric: %w", err)
	}

	return &PrometheusObserver{duration: duration, errors: errs}, nil
}

// RecordComputation tracks one analytics computation
func (o *PrometheusObserver) RecordComputation(operation string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.duration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		o.errors.WithLabelValues(operation).Inc()
	}
}

// HTTPMetrics counts requests and their latency by method, route and status
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewHTTPMetrics registers the HTTP request metrics
func NewHTTPMetrics(namespace string, reg prometheus.Registerer) (*HTTPMetrics, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Count of HTTP requests served.",
	}, []string{"method", "route", "status"}))
	if err != nil {
		return nil, fmt.Errorf("register http metric: %w", err)
	}

	latency, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"}))
	if err != nil {
		return nil, fmt.Errorf("register http metric: %w", err)
	}

	return &HTTPMetrics{requests: requests, latency: latency}, nil
}

// ObserveRequest records a finished request. Unmatched routes are
// reported as "unmatched" to keep label cardinality bounded.
func (m *HTTPMetrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler serves the metrics gathered by g in the Prometheus text format
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
