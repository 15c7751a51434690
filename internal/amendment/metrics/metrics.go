package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for amendment searches.
type Metrics struct {
	// End-to-end search latency including every page
	SearchLatency prometheus.Histogram

	// Registry pages fetched across all searches
	PagesFetched prometheus.Counter

	// Failed registry calls by operation
	UpstreamFailures *prometheus.CounterVec

	// Records accumulated and returned per search
	RecordsAccumulated prometheus.Histogram
	RecordsReturned    prometheus.Histogram
}

// NewWithRegisterer registers the collectors on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	sizeBuckets := prometheus.ExponentialBuckets(1, 4, 9) // 1 .. 65536
	return &Metrics{
		SearchLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lawsearch_amendment_search_duration_seconds",
			Help:    "Duration of amendment searches including all registry pages",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40},
		}),
		PagesFetched: factory.NewCounter(prometheus.CounterOpts{
			Name: "lawsearch_amendment_pages_fetched_total",
			Help: "Registry listing pages fetched by amendment searches",
		}),
		UpstreamFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lawsearch_upstream_failures_total",
			Help: "Failed registry calls by operation",
		}, []string{"op"}), // op: "list_laws", "list_revisions", "get_law_text"
		RecordsAccumulated: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lawsearch_amendment_records_accumulated",
			Help:    "Records accumulated from the registry before date filtering",
			Buckets: sizeBuckets,
		}),
		RecordsReturned: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lawsearch_amendment_records_returned",
			Help:    "Records returned after date filtering",
			Buckets: sizeBuckets,
		}),
	}
}

// ObserveSearch records a completed search.
func (m *Metrics) ObserveSearch(d time.Duration, accumulated, returned int) {
	if m != nil {
		m.SearchLatency.Observe(d.Seconds())
		m.RecordsAccumulated.Observe(float64(accumulated))
		m.RecordsReturned.Observe(float64(returned))
	}
}

// IncrementPagesFetched records one fetched page.
func (m *Metrics) IncrementPagesFetched() {
	if m != nil {
		m.PagesFetched.Inc()
	}
}

// IncrementUpstreamFailure records a failed registry call.
func (m *Metrics) IncrementUpstreamFailure(op string) {
	if m != nil {
		m.UpstreamFailures.WithLabelValues(op).Inc()
	}
}
