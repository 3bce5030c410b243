// Package api provides the HTTP server for TaskHero. It exposes the
// hero progression REST API consumed by the task tracker frontend.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taskhero/taskhero/internal/app/progression"
	"github.com/taskhero/taskhero/internal/infra/sqlite"
)

// Server is the TaskHero HTTP API server.
type Server struct {
	db             *sqlite.DB
	agg            *progression.Aggregator
	metricsEnabled bool
	now            func() time.Time
}

// NewServer creates a new API server over the hero store and a
// progression aggregator.
func NewServer(db *sqlite.DB, agg *progression.Aggregator) *Server {
	return &Server{db: db, agg: agg, now: time.Now}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version": "0.1.0",
		})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/achievements", s.handleCatalog)
		r.Get("/titles", s.handleTitles)
		r.Get("/streaks/milestones", s.handleStreakMilestones)

		r.Route("/heroes", func(r chi.Router) {
			r.Get("/", s.handleListHeroes)
			r.Post("/", s.handleCreateHero)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetHero)
				r.Delete("/", s.handleDeleteHero)
				r.Get("/progress", s.handleHeroProgress)
				r.Get("/achievements", s.handleHeroAchievements)
				r.Get("/streaks", s.handleHeroStreaks)
				r.Post("/missions", s.handleMissionCompleted)
				r.Post("/xp", s.handleXPGain)
				r.Post("/login", s.handleLogin)
			})
		})
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for local development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
