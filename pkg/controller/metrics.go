package controller

import (
	"net/http"
	"plotmarket/pkg/metrics"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware recording the request count and latency of
// every request, attributed by route pattern so path parameters do not
// explode cardinality.
func WithMetrics(m *metrics.HTTP) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			route := attribute.String("http.route", routePattern(r))
			method := attribute.String("http.request.method", r.Method)
			m.Requests.Add(r.Context(), 1, metric.WithAttributes(
				route, method, attribute.String("http.response.status_code", strconv.Itoa(rec.status))))
			m.Duration.Record(r.Context(), time.Since(start).Seconds(), metric.WithAttributes(route, method))
		})
	}
}
