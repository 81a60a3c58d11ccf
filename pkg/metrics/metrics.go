// Package metrics holds the Prometheus collectors shared across the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// BuildDurationBuckets covers CI runs from a few seconds up to two hours.
var BuildDurationBuckets = []float64{10, 30, 60, 120, 300, 600, 1200, 1800, 3600, 7200} //nolint: gochecknoglobals

// nolint: gochecknoglobals
var (
	// HTTPRequestDuration observes API latency per route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "autobuilder",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   DefaultBuckets,
	}, []string{"method", "route", "status"})

	// BuildsFinished counts builds reaching a terminal status.
	BuildsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "autobuilder",
		Subsystem: "builds",
		Name:      "finished_total",
		Help:      "Builds that reached a terminal status.",
	}, []string{"platform", "status"})

	// BuildDuration observes the wall time of finished builds.
	BuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "autobuilder",
		Subsystem: "builds",
		Name:      "duration_seconds",
		Help:      "Duration of finished builds.",
		Buckets:   BuildDurationBuckets,
	}, []string{"platform"})

	// FixAttempts counts fix attempts per type and resulting status.
	FixAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "autobuilder",
		Subsystem: "autofix",
		Name:      "attempts_total",
		Help:      "Fix attempts by type and status.",
	}, []string{"type", "status"})

	// RateLimited counts requests rejected by the API rate limiter.
	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "autobuilder",
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the rate limiter.",
	})
)
