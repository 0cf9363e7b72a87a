// Package metrics registers the service's Prometheus collectors on the
// default registry, exposed via GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration observes HTTP request latency per route template.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shopfront_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	// SubmissionsTotal counts intake outcomes per submission kind.
	// Outcome is one of "accepted", "rejected", "error".
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shopfront_submissions_total",
		Help: "Contact and order submissions by outcome.",
	}, []string{"kind", "outcome"})

	// NotificationsSent counts successful notification deliveries.
	NotificationsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopfront_notifications_sent_total",
		Help: "Notification emails delivered.",
	})

	// NotificationFailures counts failed notification deliveries. Failures
	// are tolerated by the intake policy, so this counter is the only place
	// they accumulate.
	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopfront_notification_failures_total",
		Help: "Notification emails that failed to deliver.",
	})
)
