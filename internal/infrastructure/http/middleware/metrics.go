package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus HTTP instrumentation.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestsActive  prometheus.Gauge
}

var (
	metricsOnce     sync.Once
	metricsInstance *Metrics
)

// NewMetrics registers the HTTP metrics on the default registry. The
// collectors are process-wide; repeated calls return the same
// instance so the registry never sees a duplicate.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsInstance = newMetrics()
	})
	return metricsInstance
}

func newMetrics() *Metrics {
	return &Metrics{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pantrychef",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests by method, path and status.",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "pantrychef",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		requestsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "pantrychef",
				Subsystem: "http",
				Name:      "requests_active",
				Help:      "In-flight HTTP requests.",
			},
		),
	}
}

// Observe records one completed request.
func (m *Metrics) Observe(method, path string, status int, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// Inc and Dec track the in-flight request gauge.
func (m *Metrics) Inc() { m.requestsActive.Inc() }
func (m *Metrics) Dec() { m.requestsActive.Dec() }
