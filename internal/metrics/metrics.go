// Package metrics defines the Prometheus instrumentation for the query
// surface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors for accept queries and machine
// construction.
type Metrics struct {
	AcceptTotal    *prometheus.CounterVec
	AcceptDuration *prometheus.HistogramVec
	BuildFailures  prometheus.Counter
}

// New registers the collectors with reg and returns them.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AcceptTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pda",
			Name:      "accept_queries_total",
			Help:      "Accept queries by machine and verdict.",
		}, []string{"machine", "verdict"}),
		AcceptDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pda",
			Name:      "accept_query_duration_seconds",
			Help:      "Wall time of the configuration-space search.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"machine"}),
		BuildFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "pda",
			Name:      "machine_build_failures_total",
			Help:      "Machine definitions rejected at construction.",
		}),
	}
}
