package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by route template, method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stream_events_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration records request latency by route template and method.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stream_events_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// LifecycleTransitions counts automatic status transitions that were persisted.
	LifecycleTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stream_events_lifecycle_transitions_total",
		Help: "Automatic event status transitions persisted on read",
	}, []string{"to"})

	// LifecycleWriteFailures counts transitions whose write failed and was skipped.
	LifecycleWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stream_events_lifecycle_write_failures_total",
		Help: "Automatic status transitions that could not be persisted",
	})

	// StatusChangesPublished counts queue publishes by result.
	StatusChangesPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stream_events_status_changes_published_total",
		Help: "Status change messages published to the queue",
	}, []string{"result"})

	// StatusHistoryWrites counts worker writes to the status history by result.
	StatusHistoryWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stream_events_status_history_writes_total",
		Help: "Status history rows written by the worker",
	}, []string{"result"})

	// ListingDegraded counts read requests answered with an empty result after a store error.
	ListingDegraded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stream_events_listing_degraded_total",
		Help: "Read requests served as an empty result because the store failed",
	})

	// AuthAttempts counts login and registration attempts by result.
	AuthAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stream_events_auth_attempts_total",
		Help: "Login and registration attempts",
	}, []string{"kind", "result"})
)
