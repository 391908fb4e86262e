package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsTotal counts handled HTTP requests by method, path and status
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests processed",
	},
	[]string{"method", "path", "status"},
)

// HTTPRequestDuration observes request latency by method and path
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// NotesCreatedTotal counts successfully created notes by tenant slug
var NotesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "notes_created_total",
		Help: "Total number of notes created",
	},
	[]string{"tenant"},
)

// LoginAttemptsTotal counts login attempts by outcome
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "login_attempts_total",
		Help: "Total number of login attempts",
	},
	[]string{"outcome"},
)
