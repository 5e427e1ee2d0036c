// Package metrics holds shared histogram buckets and the OpenTelemetry
// instruments recorded by the application.
package metrics

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Orders groups the order workflow instruments.
type Orders struct {
	// Created counts successfully placed orders.
	Created metric.Int64Counter
	// Rejected counts order attempts refused because the plot was not available.
	Rejected metric.Int64Counter
	// StatusChanges counts order status updates, attributed by the new status.
	StatusChanges metric.Int64Counter
}

// NewOrders registers the order instruments on meter.
func NewOrders(meter metric.Meter) (*Orders, error) {
	created, err := meter.Int64Counter("plotmarket.orders.created",
		metric.WithDescription("Number of orders placed."))
	if err != nil {
		return nil, fmt.Errorf("could not create orders created counter: %w", err)
	}

	rejected, err := meter.Int64Counter("plotmarket.orders.rejected",
		metric.WithDescription("Number of order attempts on plots that were not available."))
	if err != nil {
		return nil, fmt.Errorf("could not create orders rejected counter: %w", err)
	}

	statusChanges, err := meter.Int64Counter("plotmarket.orders.status_changes",
		metric.WithDescription("Number of order status updates."))
	if err != nil {
		return nil, fmt.Errorf("could not create order status counter: %w", err)
	}

	return &Orders{
		Created:       created,
		Rejected:      rejected,
		StatusChanges: statusChanges,
	}, nil
}

// HTTP groups the request instruments recorded by the metrics middleware.
type HTTP struct {
	// Requests counts handled requests by route, method and status code.
	Requests metric.Int64Counter
	// Duration records request latency in seconds by route and method.
	Duration metric.Float64Histogram
}

// NewHTTP registers the HTTP instruments on meter.
func NewHTTP(meter metric.Meter) (*HTTP, error) {
	requests, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("Number of HTTP requests handled."))
	if err != nil {
		return nil, fmt.Errorf("could not create http requests counter: %w", err)
	}

	duration, err := meter.Float64Histogram("http.server.duration",
		metric.WithDescription("HTTP request latency."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create http duration histogram: %w", err)
	}

	return &HTTP{
		Requests: requests,
		Duration: duration,
	}, nil
}
