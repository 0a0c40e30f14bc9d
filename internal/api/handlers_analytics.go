// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/felixamado/cageography/internal/cache"
	"github.com/felixamado/cageography/internal/database"
	"github.com/felixamado/cageography/internal/models"
)

// serveCached is the cache-first execution flow shared by the analytics
// handlers: check the TTL cache, run the query on a miss, cache the result,
// and respond in the standard envelope. keyParams distinguishes variants of
// the same query (e.g. different limits); nil is fine for parameterless
// queries.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, name string, keyParams interface{}, query func() (interface{}, error)) {
	if h.db == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceError, "Database not available", nil)
		return
	}

	cacheKey := cache.GenerateKey(name, keyParams)
	if h.cache != nil {
		if data, ok := h.cache.Get(cacheKey); ok {
			respondSuccess(w, data, 0, true)
			return
		}
	}

	start := time.Now()
	data, err := query()
	if err != nil {
		if errors.Is(err, database.ErrNoDataset) {
			respondError(w, http.StatusNotFound, ErrCodeNotFound, "No movies loaded", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, ErrCodeDatabase, "Query failed", err)
		return
	}

	if h.cache != nil {
		h.cache.Set(cacheKey, data)
	}

	respondSuccess(w, data, time.Since(start), false)
}

// AnalyticsGenres returns the genre distribution for the pie chart.
func (h *Handler) AnalyticsGenres(w http.ResponseWriter, r *http.Request) {
	win := h.analyticsWindow()
	h.serveCached(w, r, "AnalyticsGenres", win, func() (interface{}, error) {
		return h.db.GetGenreDistribution(r.Context(), win)
	})
}

// topRatedRequest carries the validated limit parameter.
type topRatedRequest struct {
	Limit int `validate:"gte=1,lte=100"`
}

// AnalyticsTopRated returns the top-rated table, rating descending with a
// vote-count tie-break.
func (h *Handler) AnalyticsTopRated(w http.ResponseWriter, r *http.Request) {
	req := topRatedRequest{
		Limit: getIntParam(r, "limit", h.config.Dataset.TopRatedLimit),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	win := h.analyticsWindow()
	keyParams := struct {
		Window database.Window
		Limit  int
	}{win, req.Limit}
	h.serveCached(w, r, "AnalyticsTopRated", keyParams, func() (interface{}, error) {
		return h.db.GetTopRated(r.Context(), win, req.Limit)
	})
}

// AnalyticsRatingDistribution returns the rating histogram.
func (h *Handler) AnalyticsRatingDistribution(w http.ResponseWriter, r *http.Request) {
	win := h.analyticsWindow()
	h.serveCached(w, r, "AnalyticsRatingDistribution", win, func() (interface{}, error) {
		return h.db.GetRatingDistribution(r.Context(), win,
			h.config.Dataset.RatingBinLow, h.config.Dataset.RatingBinHigh)
	})
}

// AnalyticsGenreRatings compares the leading genres by mean rating and
// mean vote count.
func (h *Handler) AnalyticsGenreRatings(w http.ResponseWriter, r *http.Request) {
	win := h.analyticsWindow()
	h.serveCached(w, r, "AnalyticsGenreRatings", win, func() (interface{}, error) {
		return h.db.GetTopGenres(r.Context(), win, h.config.Dataset.TopGenres)
	})
}

// AnalyticsReceptionIntervals returns critical reception per interval
// bucket over the trailing window.
func (h *Handler) AnalyticsReceptionIntervals(w http.ResponseWriter, r *http.Request) {
	win := h.analyticsWindow()
	h.serveCached(w, r, "AnalyticsReceptionIntervals", win, func() (interface{}, error) {
		return h.db.GetReceptionByInterval(r.Context(), win, h.config.Dataset.IntervalYears)
	})
}

// topGenreIntervalsPayload pairs the dominant genre with its per-bucket
// reception.
type topGenreIntervalsPayload struct {
	Genre     string                      `json:"genre"`
	Intervals []models.GenreIntervalStats `json:"intervals"`
}

// AnalyticsTopGenreIntervals returns audience reception of the dominant
// genre per interval bucket over the trailing window.
func (h *Handler) AnalyticsTopGenreIntervals(w http.ResponseWriter, r *http.Request) {
	win := h.analyticsWindow()
	h.serveCached(w, r, "AnalyticsTopGenreIntervals", win, func() (interface{}, error) {
		genre, intervals, err := h.db.GetTopGenreIntervals(r.Context(), win, h.config.Dataset.IntervalYears)
		if err != nil {
			return nil, err
		}
		return topGenreIntervalsPayload{Genre: genre, Intervals: intervals}, nil
	})
}
