// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/cinematch/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil middleware config uses the defaults.
func NewRouter(handler *Handler, cfg *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(cfg),
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)        // X-Request-ID plus logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(middleware.AccessLog(0))     // One log line per request
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Core API Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(router.chiMiddleware.RequestTimeout())

		r.Get("/movies/{movieID}", router.handler.GetMovie)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/stats", router.handler.UserStats)
			r.Post("/ratings", router.handler.RateMovie)
			r.Get("/genres", router.handler.PreferredGenres)
			r.Get("/similar", router.handler.SimilarUsers)

			r.Route("/recommendations", func(r chi.Router) {
				r.Get("/genre", router.handler.GenreRecommendations)
				r.Get("/similarity", router.handler.SimilarityRecommendations)
				r.Get("/compare", router.handler.CompareRecommendations)
			})
		})
	})

	// ========================
	// Metrics
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	return r
}
