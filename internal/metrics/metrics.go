// Package metrics exposes Prometheus instrumentation for the pricing API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EstimatesComputed counts priced estimates by pricing model.
	EstimatesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_estimates_computed_total",
			Help: "Total number of estimates that produced a price",
		},
		[]string{"model"},
	)

	// EstimatesSuppressed counts zero estimates by suppression reason.
	// Unrecognized and unimplemented models surface here rather than as
	// errors, so this is the primary diagnostic signal for misconfigured
	// tenants.
	EstimatesSuppressed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_estimates_suppressed_total",
			Help: "Total number of estimates suppressed to zero, by reason",
		},
		[]string{"reason", "model"},
	)

	// RequestDuration observes end-to-end request handling time.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "pricing_request_duration_seconds",
			Help: "Duration of API request handling in seconds",
		},
		[]string{"endpoint"},
	)
)
