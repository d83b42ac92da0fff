// Package metrics holds the prometheus collectors of the notification service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dispatch modes.
const (
	ModeDeferred  = "deferred"
	ModeImmediate = "immediate"
	ModeRetry     = "retry"
)

// Delivery outcomes.
const (
	OutcomeSent     = "sent"
	OutcomeFailed   = "failed"
	OutcomeConflict = "conflict"
	OutcomeSkipped  = "skipped"
)

var (
	created = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "notifications",
		Name:      "created_total",
		Help:      "Notifications accepted for delivery by dispatch mode.",
	}, []string{"mode"})

	delivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "notifications",
		Name:      "deliveries_total",
		Help:      "Delivery attempts by outcome.",
	}, []string{"outcome"})

	submitFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "notifications",
		Name:      "submit_failures_total",
		Help:      "Dispatch tasks that could not be handed to the dispatcher.",
	}, []string{"mode"})

	deliveryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "notifications",
		Name:      "delivery_duration_seconds",
		Help:      "Time spent in the transport for one delivery, retries included.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Created counts a notification accepted in the given mode.
func Created(mode string) {
	created.WithLabelValues(mode).Inc()
}

// Delivered counts a finished delivery and observes its duration.
func Delivered(outcome string, took time.Duration) {
	delivered.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSent || outcome == OutcomeFailed {
		deliveryDuration.Observe(took.Seconds())
	}
}

// SubmitFailed counts a dispatch task the dispatcher refused.
func SubmitFailed(mode string) {
	submitFailures.WithLabelValues(mode).Inc()
}
