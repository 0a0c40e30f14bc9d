// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package api

import (
	"net/http"
	"time"

	"github.com/felixamado/cageography/internal/models"
)

// Health returns overall service health: database connectivity, whether a
// dataset ingest has completed, and the loaded movie count.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.db != nil && h.db.Ping(r.Context()) == nil
	datasetLoaded := h.loader != nil && h.loader.Loaded()

	movieCount := 0
	if dbConnected {
		if count, err := h.db.CountMovies(r.Context()); err == nil {
			movieCount = count
		}
	}

	status := "healthy"
	if !dbConnected || !datasetLoaded {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:            status,
		Version:           Version,
		DatabaseConnected: dbConnected,
		DatasetLoaded:     datasetLoaded,
		MovieCount:        movieCount,
		Uptime:            time.Since(h.startTime).Seconds(),
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive is the liveness probe: 200 whenever the process is up,
// regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   map[string]string{"status": "alive"},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady is the readiness probe: 200 only when the database answers
// and the dataset has been ingested.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.db == nil || h.db.Ping(r.Context()) != nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceError, "Database not available", nil)
		return
	}
	if h.loader == nil || !h.loader.Loaded() {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceError, "Dataset not loaded", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   map[string]string{"status": "ready"},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
