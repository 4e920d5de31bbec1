package upstream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK        = "ok"
	outcomeRedirect  = "redirect"
	outcomeHTTPError = "http_error"
	outcomeTransport = "transport"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "babywear_gateway",
			Name:      "upstream_requests_total",
			Help:      "Calls forwarded to the recommendation backend, by outcome.",
		},
		[]string{"endpoint", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "babywear_gateway",
			Name:      "upstream_duration_seconds",
			Help:      "Latency of calls to the recommendation backend.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)
