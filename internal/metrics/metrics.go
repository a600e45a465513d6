package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lendboard"

// OperationMetrics tracks lending operations by kind and outcome.
type OperationMetrics struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// HTTPMetrics tracks API requests by route.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

var (
	operationsOnce     sync.Once
	operationsRegistry *OperationMetrics

	httpOnce     sync.Once
	httpRegistry *HTTPMetrics
)

// Operations returns the lazily registered metrics of lending operations.
func Operations() *OperationMetrics {
	operationsOnce.Do(func() {
		operationsRegistry = &OperationMetrics{
			total: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "operation",
				Name:      "total",
				Help:      "Lending operations segmented by kind and outcome.",
			}, []string{"kind", "outcome"}),
			duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "operation",
				Name:      "duration_seconds",
				Help:      "Time from plan request to the last mined submission.",
				Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 80, 160},
			}, []string{"kind"}),
			inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "operation",
				Name:      "in_flight",
				Help:      "1 while an operation is being executed.",
			}),
		}
		prometheus.MustRegister(
			operationsRegistry.total,
			operationsRegistry.duration,
			operationsRegistry.inFlight,
		)
	})
	return operationsRegistry
}

// Start marks an operation as running. The returned func records its outcome.
func (m *OperationMetrics) Start(kind string) func(outcome string) {
	started := time.Now()
	m.inFlight.Inc()
	return func(outcome string) {
		m.inFlight.Dec()
		m.total.WithLabelValues(kind, outcome).Inc()
		m.duration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
	}
}

// HTTP returns the lazily registered metrics of the API.
func HTTP() *HTTPMetrics {
	httpOnce.Do(func() {
		httpRegistry = &HTTPMetrics{
			requests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "API requests segmented by method, route and status code.",
			}, []string{"method", "route", "status"}),
			latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Latency distribution of API requests.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"method", "route"}),
		}
		prometheus.MustRegister(httpRegistry.requests, httpRegistry.latency)
	})
	return httpRegistry
}

func (m *HTTPMetrics) Observe(method, route string, status int, duration time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(duration.Seconds())
}
