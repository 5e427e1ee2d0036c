// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the plot marketplace.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"plotmarket/internal/api/handler/v1handler"
	"plotmarket/internal/config"
	"plotmarket/pkg/controller"
	"plotmarket/pkg/metrics"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI document for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// CORSOrigins lists the browser origins allowed to call the API.
	CORSOrigins []string
	// AuthRateLimit is the number of /auth requests a client may make per AuthRateWindow.
	AuthRateLimit int
	// AuthRateWindow is the fixed window AuthRateLimit is counted over.
	AuthRateWindow time.Duration
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		CORSOrigins:       cfg.HTTP.CORSOrigins,
		AuthRateLimit:     cfg.HTTP.AuthRateLimit,
		AuthRateWindow:    cfg.HTTP.AuthRateWindow,
	}
}

type Deps struct {
	v1handler.Deps

	// Meter records HTTP metrics.
	Meter metric.Meter
	// Redis backs the auth rate limiter. A nil client disables rate limiting.
	Redis redis.Cmdable
}

// NewMeterProvider returns an OpenTelemetry meter provider exporting to the
// default Prometheus registry, which the server exposes at MetricsPath.
func NewMeterProvider() (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// NewHandler builds the root router:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 document and Swagger UI
// - v1 API routes
// - pprof endpoints for profiling
// Every request passes through the logging, CORS and metrics middlewares.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	httpMetrics, err := metrics.NewHTTP(deps.Meter)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	r := chi.NewRouter()
	r.Use(controller.WithLogger, controller.WithCORS(opts.CORSOrigins), controller.WithMetrics(httpMetrics))

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.Handler())

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// swagger playground
	r.Handle("/docs/*", v5emb.New(
		"Plot Marketplace",
		"/specs/v1.yaml",
		"/docs/",
	))

	// pprof
	r.Mount("/debug/pprof", controller.Pprof())

	var authLimit func(http.Handler) http.Handler
	if deps.Redis != nil && opts.AuthRateLimit > 0 {
		authLimit = controller.NewRateLimiter(deps.Redis, "auth", opts.AuthRateLimit, opts.AuthRateWindow).Handler
	}
	v1handler.New(deps.Deps).Routes(r, authLimit)

	return r, nil
}

// NewServer wires up and returns a configured *http.Server using the provided
// Options. The handler is bounded by RequestTimeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr: opts.Addr,
		Handler: http.TimeoutHandler(handler, opts.RequestTimeout,
			`{"code":"INTERNAL","message":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
