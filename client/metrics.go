package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	endpointMilestones = "milestones"
	endpointRecommend  = "recommend"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "babywear_client",
		Name:      "requests_total",
		Help:      "Fetch calls by endpoint and outcome.",
	},
	[]string{"endpoint", "outcome"},
)
