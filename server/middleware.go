package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

const requestIDHeader = "X-Request-ID"

type ctxKey struct{}

type metrics struct {
	queries      *prometheus.SummaryVec
	cacheLookups *prometheus.CounterVec
	badRequests  *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		queries: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Name:       "wmr_query_duration_seconds",
			Help:       "Time spent answering route finder queries",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}, []string{"query"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wmr_query_cache_lookups_total",
			Help: "Query cache lookups by result",
		}, []string{"query", "result"}),
		badRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wmr_query_bad_requests_total",
			Help: "Queries rejected for missing parameters",
		}, []string{"query"}),
	}
	reg.MustRegister(m.queries, m.cacheLookups, m.badRequests)
	return m
}

// instrument records how long each call of h takes.
func (s *Server) instrument(query string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() { s.metrics.queries.WithLabelValues(query).Observe(time.Since(start).Seconds()) }()
		h(w, r)
	}
}

// requestID tags each request with the caller's X-Request-ID or a new UUID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// RequestID returns the id assigned to the request carrying ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"id", RequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}
