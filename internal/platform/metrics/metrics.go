package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the HTTP-level Prometheus collectors.
type Metrics struct {
	RequestLatency *prometheus.HistogramVec
	AccessDenied   *prometheus.CounterVec
}

// NewWithRegisterer registers the collectors on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lawsearch_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern, method and status",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"route", "method", "status"}),

		AccessDenied: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lawsearch_access_denied_total",
			Help: "Requests rejected by the access gates",
		}, []string{"gate"}), // gate: "ip_allowlist", "basic_auth"
	}
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(route, method, status string, d time.Duration) {
	if m != nil {
		m.RequestLatency.WithLabelValues(route, method, status).Observe(d.Seconds())
	}
}

// IncrementAccessDenied records a rejection by gate.
func (m *Metrics) IncrementAccessDenied(gate string) {
	if m != nil {
		m.AccessDenied.WithLabelValues(gate).Inc()
	}
}
