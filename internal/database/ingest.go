// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/felixamado/cageography/internal/logging"
	"github.com/felixamado/cageography/internal/metrics"
	"github.com/felixamado/cageography/internal/models"
)

// ReplaceMovies atomically swaps the movies table contents for the given
// rows. Readers either see the previous dataset or the new one, never a
// partial ingest.
func (db *DB) ReplaceMovies(ctx context.Context, movies []models.Movie) error {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin ingest transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM movies"); err != nil {
		return fmt.Errorf("failed to clear movies table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO movies (
			id, title, year, genre, director, cast_list,
			rating, votes, metascore, review_count, url, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer closeQuietly(stmt)

	now := time.Now().UTC()
	for i := range movies {
		m := &movies[i]
		createdAt := now
		if m.CreatedAt != nil {
			createdAt = *m.CreatedAt
		}
		if _, err := stmt.ExecContext(ctx,
			m.ID, m.Title, m.Year, m.Genre, m.Director, m.Cast,
			m.Rating, m.Votes, m.Metascore, m.ReviewCount, m.URL, createdAt,
		); err != nil {
			return fmt.Errorf("failed to insert movie %q (%d): %w", m.Title, m.Year, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ingest: %w", err)
	}

	metrics.RecordDBQuery("replace_movies", time.Since(start), nil)
	logging.Debug().
		Int("movies", len(movies)).
		Dur("duration", time.Since(start)).
		Msg("Movies table replaced")

	return nil
}
