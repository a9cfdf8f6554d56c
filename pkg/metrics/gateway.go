package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// GatewayMetrics records timings and outcomes for remote API calls.
type GatewayMetrics struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewGatewayMetrics registers gateway metrics on the provided registerer.
func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	if reg == nil {
		return &GatewayMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gateway_request_duration_seconds",
		Help:    "Duration of remote commerce API calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_requests_total",
		Help: "Remote commerce API calls by operation and HTTP status.",
	}, []string{"operation", "status"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_transport_failures_total",
		Help: "Remote commerce API calls that failed before a response.",
	}, []string{"operation"})
	reg.MustRegister(duration, requests, failures)
	return &GatewayMetrics{
		duration: duration,
		requests: requests,
		failures: failures,
	}
}

// ObserveRequest records one completed call.
func (g *GatewayMetrics) ObserveRequest(operation string, status int, duration time.Duration) {
	if g == nil || g.requests == nil {
		return
	}
	op := normalizeLabel(operation)
	g.requests.WithLabelValues(op, strconv.Itoa(status)).Inc()
	g.duration.WithLabelValues(op).Observe(duration.Seconds())
}

// IncTransportFailure counts a call that never produced a response.
func (g *GatewayMetrics) IncTransportFailure(operation string) {
	if g == nil || g.failures == nil {
		return
	}
	g.failures.WithLabelValues(normalizeLabel(operation)).Inc()
}

func normalizeLabel(operation string) string {
	if operation == "" {
		return "unknown"
	}
	return operation
}
