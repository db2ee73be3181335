package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// routeQueries counts answered route queries by dijkstra.Status.
	routeQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campusnav",
		Subsystem: "route",
		Name:      "queries_total",
		Help:      "Total number of route queries answered, by result status",
	}, []string{"status"})

	// routeLatency measures time spent inside the shortest-path search.
	routeLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "campusnav",
		Subsystem: "route",
		Name:      "query_seconds",
		Help:      "Route query latency in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campusnav",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests, by handler and response code",
	}, []string{"handler", "code"})
)
