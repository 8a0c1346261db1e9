// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the search pipeline over HTTP for the web frontend:
// POST /search with the frontend's JSON body, a health endpoint, and
// Prometheus metrics.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-scout/internal/history"
	"github.com/pdiddy/arxiv-scout/internal/metrics"
	"github.com/pdiddy/arxiv-scout/internal/search"
)

// Server handles the HTTP API.
type Server struct {
	provider search.Provider
	history  *history.Store // nil disables history recording
	logger   *zap.Logger
}

// New creates the API server. history may be nil.
func New(provider search.Provider, hist *history.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{provider: provider, history: hist, logger: logger}
}

// Router builds the HTTP handler: routes, metrics, request logging, and CORS
// for the given browser origins.
func (s *Server) Router(corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.Middleware())
	r.Use(s.logRequests)

	r.Get("/", s.handleHealth)
	r.Post("/search", s.handleSearch)
	r.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}

// logRequests logs one line per request with method, path, status, duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
