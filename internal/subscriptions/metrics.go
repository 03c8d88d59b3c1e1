package subscriptions

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "newsletter"

// Subscription outcomes.
const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

var (
	subscriptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "subscriptions",
			Name:      "requests_total",
			Help:      "Total subscription requests by outcome",
		},
		[]string{"outcome"},
	)

	insertDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "subscriptions",
			Name:      "insert_duration_seconds",
			Help:      "Time to store a subscriber",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)
)

func recordOutcome(outcome string) {
	subscriptionsTotal.WithLabelValues(outcome).Inc()
}
