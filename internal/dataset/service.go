// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package dataset

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/felixamado/cageography/internal/config"
	"github.com/felixamado/cageography/internal/database"
	"github.com/felixamado/cageography/internal/logging"
	"github.com/felixamado/cageography/internal/metrics"
	"github.com/felixamado/cageography/internal/models"
)

// Service owns the CSV-to-database ingest path. It is used once at startup
// and again on every admin-triggered reload.
type Service struct {
	cfg *config.Config
	db  *database.DB

	mu        sync.RWMutex
	lastStats LoadStats
	loadedAt  time.Time
	loaded    bool
}

// NewService creates an ingest service bound to the configured dataset.
func NewService(cfg *config.Config, db *database.DB) *Service {
	return &Service{cfg: cfg, db: db}
}

// Load reads the CSV, replaces the movies table with the normalized
// filmography, and returns the number of movies ingested. Concurrent calls
// are serialized by the database transaction; the stats snapshot is guarded
// here.
func (s *Service) Load(ctx context.Context) (int, error) {
	start := time.Now()

	movies, stats, err := LoadCSV(s.cfg.Dataset.Path, s.cfg.Dataset.Actor)
	if err != nil {
		return 0, err
	}

	if err := s.db.ReplaceMovies(ctx, movies); err != nil {
		return 0, fmt.Errorf("failed to ingest %d movies: %w", len(movies), err)
	}

	s.mu.Lock()
	s.lastStats = stats
	s.loadedAt = time.Now().UTC()
	s.loaded = true
	s.mu.Unlock()

	metrics.DatasetMovies.Set(float64(len(movies)))
	metrics.DatasetReloads.Inc()
	metrics.DatasetIngestDuration.Observe(time.Since(start).Seconds())

	logging.Info().
		Int("movies", len(movies)).
		Dur("duration", time.Since(start)).
		Msg("Dataset ingest complete")

	return len(movies), nil
}

// Loaded reports whether at least one ingest has completed.
func (s *Service) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Stats returns a snapshot of the dataset for the server-info endpoint.
func (s *Service) Stats(ctx context.Context) (models.DatasetStats, error) {
	ds, err := s.db.GetDatasetStats(ctx)
	if err != nil {
		return models.DatasetStats{}, err
	}

	s.mu.RLock()
	ds.SourcePath = s.cfg.Dataset.Path
	ds.SkippedRows = s.lastStats.SkippedRows
	if !s.loadedAt.IsZero() {
		loadedAt := s.loadedAt
		ds.LoadedAt = &loadedAt
	}
	s.mu.RUnlock()

	return ds, nil
}
