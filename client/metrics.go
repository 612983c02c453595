package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "texterify_client",
			Name:      "requests_total",
			Help:      "API requests by method and response status.",
		},
		[]string{"method", "status"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "texterify_client",
			Name:      "request_failures_total",
			Help:      "Requests that failed before any response status was received.",
		},
		[]string{"method"},
	)
)
