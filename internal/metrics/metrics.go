package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BrowseRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_browse_requests_total",
			Help: "Total number of browse requests per catalog kind",
		},
		[]string{"kind"},
	)

	BrowseMatched = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_browse_matched_items",
			Help:    "Number of items matching the browse criteria",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
		},
		[]string{"kind"},
	)

	BrowseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "catalog_browse_duration_seconds",
			Help: "Duration of filter, aggregation and option extraction in seconds",
		},
		[]string{"kind"},
	)

	Mutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_mutations_total",
			Help: "Total number of catalog record mutations",
		},
		[]string{"kind", "op", "result"},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// ObserveBrowse records one browse request for kind.
func ObserveBrowse(kind string, matched int, took time.Duration) {
	BrowseRequests.WithLabelValues(kind).Inc()
	BrowseMatched.WithLabelValues(kind).Observe(float64(matched))
	BrowseDuration.WithLabelValues(kind).Observe(took.Seconds())
}

func ObserveMutation(kind, op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	Mutations.WithLabelValues(kind, op, result).Inc()
}
