// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/felixamado/cageography/internal/logging"
)

// healthRateLimit is the permissive limit for health endpoints so external
// monitors can poll freely.
var healthRateLimit = struct {
	Requests int
	Window   time.Duration
}{Requests: 1000, Window: time.Minute}

// ChiMiddlewareConfig holds configuration for the Chi middleware factories.
type ChiMiddlewareConfig struct {
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	CORSMaxAge         int // seconds

	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
}

// DefaultChiMiddlewareConfig returns the defaults used when no explicit
// configuration is supplied.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"*"},
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		CORSMaxAge:         86400,

		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		RateLimitDisabled: false,
	}
}

// ChiMiddleware provides Chi-compatible middleware factories built on the
// production-hardened go-chi/cors and go-chi/httprate implementations.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates the middleware factory.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: config.CORSAllowedOrigins,
		AllowedMethods: config.CORSAllowedMethods,
		AllowedHeaders: config.CORSAllowedHeaders,
		MaxAge:         config.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: config,
		cors:   corsHandler,
	}
}

// CORS returns the CORS middleware.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit returns the standard IP-keyed rate limiter for API endpoints.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return passthrough
	}
	return httprate.Limit(
		m.config.RateLimitRequests,
		m.config.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimitExceeded),
	)
}

// RateLimitHealth returns the permissive limiter for health endpoints.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return passthrough
	}
	return httprate.Limit(
		healthRateLimit.Requests,
		healthRateLimit.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimitExceeded),
	)
}

func passthrough(next http.Handler) http.Handler {
	return next
}

// rateLimitExceeded responds in the standard error envelope instead of
// httprate's plain-text default.
func rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	logging.Warn().
		Str("path", sanitizeLogValue(r.URL.Path)).
		Str("remote", sanitizeLogValue(r.RemoteAddr)).
		Msg("Rate limit exceeded")
	respondError(w, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Too many requests", nil)
}
