// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package api

import (
	"net/http"
	"time"

	gorillaws "github.com/gorilla/websocket"

	"github.com/felixamado/cageography/internal/cache"
	"github.com/felixamado/cageography/internal/config"
	"github.com/felixamado/cageography/internal/database"
	"github.com/felixamado/cageography/internal/dataset"
	"github.com/felixamado/cageography/internal/logging"
	ws "github.com/felixamado/cageography/internal/websocket"
)

// Version is reported by the health and server-info endpoints.
const Version = "1.0.0"

// Handler processes all HTTP API requests. Analytics responses are cached
// with a TTL from config; the cache is cleared on dataset reload.
type Handler struct {
	db        *database.DB
	config    *config.Config
	loader    *dataset.Service
	wsHub     *ws.Hub
	cache     *cache.Cache
	startTime time.Time
	now       func() time.Time // injectable clock for window math
}

// NewHandler creates the API handler with all required dependencies.
func NewHandler(db *database.DB, cfg *config.Config, loader *dataset.Service, wsHub *ws.Hub) *Handler {
	return &Handler{
		db:        db,
		config:    cfg,
		loader:    loader,
		wsHub:     wsHub,
		cache:     cache.New(cfg.API.CacheTTL),
		startTime: time.Now(),
		now:       time.Now,
	}
}

// ClearCache invalidates all cached analytics payloads. Called after each
// successful dataset reload.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Clear()
	}
}

// analyticsWindow is the trailing year range all analytics aggregate over.
// Future-dated premieres fall outside it and surface via Upcoming instead.
func (h *Handler) analyticsWindow() database.Window {
	return database.WindowFor(h.now(), h.config.Dataset.WindowYears)
}

// getUpgrader builds the WebSocket upgrader honoring the CORS origin list.
func (h *Handler) getUpgrader() gorillaws.Upgrader {
	origins := h.config.Security.CORSOrigins
	return gorillaws.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			for _, allowed := range origins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket origin rejected")
			return false
		},
	}
}
