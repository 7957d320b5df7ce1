package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Webhook delivery outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeIgnored  = "ignored"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var (
	WebhookDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_deliveries_total",
		Help: "GitHub webhook deliveries by event header and outcome",
	}, []string{"event", "outcome"})

	StoreFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "event_store_failures_total",
		Help: "Event store operations that returned an error",
	}, []string{"operation"})

	StoreDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "event_store_operation_duration_seconds",
		Help:    "Latency of event store operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	EventsPurged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "events_purged_total",
		Help: "Events removed by retention sweeps",
	})
)
