// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package api

import (
	"net/http"
	"time"

	"github.com/felixamado/cageography/internal/logging"
	"github.com/felixamado/cageography/internal/models"
	ws "github.com/felixamado/cageography/internal/websocket"
)

// moviesRequest carries validated pagination parameters.
type moviesRequest struct {
	Limit  int `validate:"gte=1"`
	Offset int `validate:"gte=0"`
}

// Movies returns a paginated page of the filmography, newest releases first.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := moviesRequest{
		Limit:  getIntParam(r, "limit", h.config.API.DefaultPageSize),
		Offset: getIntParam(r, "offset", 0),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if req.Limit > h.config.API.MaxPageSize {
		req.Limit = h.config.API.MaxPageSize
	}

	movies, total, err := h.db.GetMovies(r.Context(), req.Limit, req.Offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeDatabase, "Failed to fetch movies", err)
		return
	}

	respondSuccess(w, models.MovieList{
		Movies: movies,
		Total:  total,
		Limit:  req.Limit,
		Offset: req.Offset,
	}, time.Since(start), false)
}

// Summary returns the career summary shown at the top of the dashboard.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	win := h.analyticsWindow()
	horizon := h.config.UpcomingHorizon(h.now())
	keyParams := map[string]int{"start": win.StartYear, "end": win.EndYear, "horizon": horizon}
	h.serveCached(w, r, "Summary", keyParams, func() (interface{}, error) {
		return h.db.GetSummary(r.Context(), h.config.Dataset.Actor, win, horizon)
	})
}

// Upcoming returns scheduled future premieres.
func (h *Handler) Upcoming(w http.ResponseWriter, r *http.Request) {
	horizon := h.config.UpcomingHorizon(h.now())
	h.serveCached(w, r, "Upcoming", horizon, func() (interface{}, error) {
		return h.db.GetUpcoming(r.Context(), horizon)
	})
}

// ServerInfo reports version, uptime, and dataset metadata.
func (h *Handler) ServerInfo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	stats, err := h.loader.Stats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeDatabase, "Failed to fetch dataset stats", err)
		return
	}

	respondSuccess(w, models.ServerInfo{
		Version:   Version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Actor:     h.config.Dataset.Actor,
		Dataset:   stats,
		StartedAt: h.startTime,
	}, time.Since(start), false)
}

// Reload re-ingests the CSV, clears the analytics cache, and notifies
// connected dashboards. Intended for use after the dataset file is updated.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	count, err := h.loader.Load(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeReloadFailed, "Dataset reload failed", err)
		return
	}

	h.ClearCache()

	duration := time.Since(start)
	if h.wsHub != nil {
		h.wsHub.BroadcastDatasetReloaded(count, duration.Milliseconds())
	}

	logging.Info().
		Int("movies", count).
		Dur("duration", duration).
		Msg("Dataset reloaded via API")

	respondSuccess(w, map[string]interface{}{
		"movies":      count,
		"duration_ms": duration.Milliseconds(),
	}, duration, false)
}

// WebSocket upgrades the connection and registers the client with the hub.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceError, "WebSocket service unavailable", nil)
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error().Err(err).Msg("WebSocket upgrade error")
		return
	}

	client := ws.NewClient(h.wsHub, conn)
	h.wsHub.Register <- client
	client.Start()
}
