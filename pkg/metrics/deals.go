package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the top-deals HTTP handler
	TopDealsLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "deals_top_latency_seconds",
		Help:    "Latency of the top deals handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of top-deals lists served, by outcome
	TopDealsRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deals_top_requests_total",
		Help: "Total number of top deals requests",
	}, []string{"status"})
)

func Init() {
	prometheus.MustRegister(
		TopDealsLatency,
		TopDealsRequests,
	)
}
