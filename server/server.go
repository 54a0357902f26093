// Package server exposes the route finder's queries over HTTP as JSON.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/theoremus-urban-solutions/wmr-route-finder/config"
	"github.com/theoremus-urban-solutions/wmr-route-finder/finder"
)

const shutdownTimeout = 10 * time.Second

// Server answers finder queries over HTTP.
type Server struct {
	cfg      config.ServerConfig
	finder   *finder.Finder
	logger   hclog.Logger
	registry *prometheus.Registry
	metrics  *metrics
	cache    *responseCache
	now      func() time.Time
	http     *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l hclog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegistry registers the server metrics with reg instead of a private
// registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// New creates a Server for f.
func New(cfg config.ServerConfig, f *finder.Finder, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		finder:   f,
		logger:   hclog.NewNullLogger(),
		registry: prometheus.NewRegistry(),
		cache:    newResponseCache(defaultCacheEntries),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = newMetrics(s.registry)
	return s
}

// Handler returns the router serving every endpoint.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestIDHeader},
	}))

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/lines", s.instrument("lines", s.handleLines))
	r.Get("/api/lines/{route}/termini", s.instrument("termini", s.handleTermini))
	r.Get("/api/lines/{route}/stations", s.instrument("stations", s.handleStations))
	r.Get("/api/paths", s.instrument("paths", s.handlePaths))
	r.Get("/api/paths/shortest", s.instrument("shortest", s.handleShortest))
	r.Get("/api/paths/accessible", s.instrument("accessible", s.handleAccessible))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// Start listens on the configured port and serves in the background. It
// returns the bound address.
func (s *Server) Start() (string, error) {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("listen %s: %w", addr, err)
	}
	s.http = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()
	s.logger.Info("server listening", "addr", ln.Addr().String())
	return ln.Addr().String(), nil
}

// Shutdown stops the server, waiting for in-flight requests until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.logger.Info("server shut down successfully")
	return nil
}

// Run starts the server and blocks until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	if _, err := s.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	s.logger.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}
