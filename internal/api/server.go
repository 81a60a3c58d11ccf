// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the auto builder service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"autobuilder/internal/api/handler/v1handler"
	"autobuilder/internal/config"
	"autobuilder/pkg/controller"
	"autobuilder/pkg/ratelimit"
	"autobuilder/pkg/webshell"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

// V1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var V1Spec []byte

const (
	specsPath   = "/specs/v1.yaml"
	docsPath    = "/docs/"
	healthPath  = "/api/health"
	compression = 5
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// Zero durations fall back to the net/http defaults.
type Options struct {
	// SecHandlerOptions configures bearer token verification for protected routes.
	SecHandlerOptions *v1handler.SecHandlerOptions

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
	// RequestTimeout bounds the handling of a single /api request.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string

	CORSOrigins []string
	HSTS        bool
	// StaticDir holds the built web client. Empty serves a JSON banner at /.
	StaticDir string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		CORSOrigins:       cfg.HTTP.CORSOrigins,
		HSTS:              cfg.Security.HSTS,
		StaticDir:         cfg.HTTP.StaticDir,
	}
}

type Deps struct {
	v1handler.Deps

	// Limiter throttles /api requests per client. Nil disables rate limiting.
	Limiter ratelimit.Limiter
	// RiverUI is mounted at /riverui when set.
	RiverUI http.Handler
}

// NewHandler builds the root router.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	v1, err := v1handler.New(deps.Deps)
	if err != nil {
		return nil, fmt.Errorf("could not create v1 handler: %w", err)
	}
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP,
		controller.WithLogger,
		controller.WithRecover,
		controller.WithMetrics,
		controller.WithSecurityHeaders(opts.HSTS),
		controller.WithCORS(opts.CORSOrigins),
		middleware.Compress(compression))

	if opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, promhttp.Handler())
	}

	// v1 specs file
	r.Get(specsPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(V1Spec)
	})
	// v1 api swagger playground
	r.Handle(docsPath+"*", v5emb.New("GitHub Auto Builder API", specsPath, docsPath))

	r.Mount("/debug/pprof", controller.PprofRouter())
	if deps.RiverUI != nil {
		r.Handle("/riverui", deps.RiverUI)
		r.Handle("/riverui/*", deps.RiverUI)
	}

	r.Route("/api", func(r chi.Router) {
		if deps.Limiter != nil {
			r.Use(controller.WithRateLimit(deps.Limiter, healthExempt))
		}
		if deps.Audit != nil {
			r.Use(controller.WithAudit(deps.Audit))
		}
		api := v1.Routes(secHandler)
		if opts.RequestTimeout > 0 {
			r.Mount("/", http.TimeoutHandler(api, opts.RequestTimeout, `{"error":{"code":503,"message":"request timed out","type":"timeout"}}`))
		} else {
			r.Mount("/", api)
		}
	})

	if opts.StaticDir == "" {
		r.Get("/", v1.Handle(v1.Root))

		return r, nil
	}

	fsys := os.DirFS(opts.StaticDir)
	if err := webshell.CheckStaticDir(fsys); err != nil {
		return nil, fmt.Errorf("invalid static dir %s: %w", opts.StaticDir, err)
	}
	matcher, err := webshell.NewMatcher(deps.Cache)
	if err != nil {
		return nil, fmt.Errorf("invalid cache config: %w", err)
	}
	r.NotFound(webshell.NewStaticHandler(fsys, matcher).ServeHTTP)

	return r, nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

func healthExempt(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, healthPath)
}
