// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/felixamado/cageography/internal/config"
	"github.com/felixamado/cageography/internal/middleware"
)

// Router wires the handler into the chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter builds a router from the handler and the security config.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwConfig.RateLimitRequests = cfg.Security.RateLimitReqs
	mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled

	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	// Health endpoints carry a permissive rate limit so monitors can poll.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// Core API endpoints.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/movies", router.handler.Movies)
		r.Get("/summary", router.handler.Summary)
		r.Get("/upcoming", router.handler.Upcoming)
		r.Get("/server-info", router.handler.ServerInfo)
		r.Get("/ws", router.handler.WebSocket)
		r.Post("/reload", router.handler.Reload)
	})

	// Analytics endpoints: read-only, cached, one per dashboard chart.
	r.Route("/api/v1/analytics", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/genres", router.handler.AnalyticsGenres)
		r.Get("/top-rated", router.handler.AnalyticsTopRated)
		r.Get("/rating-distribution", router.handler.AnalyticsRatingDistribution)
		r.Get("/genre-ratings", router.handler.AnalyticsGenreRatings)
		r.Get("/reception-intervals", router.handler.AnalyticsReceptionIntervals)
		r.Get("/top-genre-intervals", router.handler.AnalyticsTopGenreIntervals)
	})

	// Prometheus scrape endpoint.
	r.Handle("/metrics", promhttp.Handler())

	// Embedded dashboard page at the root.
	r.Get("/", router.handler.Dashboard)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Endpoint not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	return r
}
