package deals

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DealEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deal_events_total",
			Help: "Count of sponsored deal events by placement and event_type.",
		},
		[]string{"placement", "event_type"},
	)
)

func init() {
	prometheus.MustRegister(DealEventsTotal)
}
