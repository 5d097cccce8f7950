// Package api configures and exposes the HTTP server, routes, metrics, docs
// and related middleware for the fortune service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"fortune/internal/api/handler/v1handler"
	"fortune/internal/config"
	"fortune/pkg/controller"
	"fortune/pkg/logger"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI document of the fortune API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const (
	specPath = "/specs/v1.yaml"
	docsPath = "/docs/"
)

// Options holds configuration for the HTTP server and its dependencies.
// Zero durations leave the corresponding net/http limit disabled.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. "127.0.0.1:8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds a single request via http.TimeoutHandler.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// EnablePprof mounts net/http/pprof under /debug/pprof/.
	EnablePprof bool

	// Registerer and Gatherer back the metrics endpoint. They default to the
	// Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewOptions maps the HTTP settings of cfg to Options. addr is the validated
// listen address, see config.Config.ListenAddr.
func NewOptions(cfg *config.Config, addr string) Options {
	return Options{
		Addr:              addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		EnablePprof:       cfg.HTTP.EnablePprof,
	}
}

type Deps struct {
	v1handler.Deps
}

// NewServer wires up and returns a configured *http.Server. It sets up:
// - Prometheus metrics endpoint (MetricsPath) fed by an OpenTelemetry meter provider
// - the embedded OpenAPI document and Swagger UI
// - the fortune API on every remaining path
// - pprof endpoints when enabled
// Routing is by exact path (prefix for docs and pprof) without path cleaning.
// The router is wrapped with CORS and logging middlewares and a request timeout.
// Connection-level errors are written to the logger in ctx.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	// prometheus metrics
	metricsHandler := promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(opts.Registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	deps.MeterProvider = sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	// swagger playground
	docsHandler := v5emb.New("Fortune Service", specPath, docsPath)

	// pprof
	var pprofHandler http.Handler
	if opts.EnablePprof {
		pprofHandler = controller.PprofMux()
	}

	// fortune api
	v1, err := v1handler.New(deps.Deps)
	if err != nil {
		return nil, fmt.Errorf("could not create v1 handler: %w", err)
	}
	apiHandler := v1.Routes()

	// Paths are matched as sent, never cleaned; anything unmatched is a fortune.
	mux := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		switch {
		case path == opts.MetricsPath:
			metricsHandler.ServeHTTP(w, r)
		case path == specPath:
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write(v1Spec)
		case strings.HasPrefix(path, docsPath):
			docsHandler.ServeHTTP(w, r)
		case pprofHandler != nil && strings.HasPrefix(path, controller.PprofPrefix):
			pprofHandler.ServeHTTP(w, r)
		default:
			apiHandler.ServeHTTP(w, r)
		}
	})

	// cors
	handler := controller.WithCORS(mux)

	// logger
	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, v1handler.MessageLoadFailed)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
		ErrorLog:          logger.StdLog(ctx, slog.LevelWarn),
	}, nil
}
