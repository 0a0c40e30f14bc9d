// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/felixamado/cageography/internal/models"
)

// GetGenreDistribution returns the number of windowed movies per (first)
// genre, ordered by count descending with an alphabetical tie-break. Every
// movie carries exactly one genre tag after ingest, so the counts sum to the
// number of windowed movies with a known genre.
func (db *DB) GetGenreDistribution(ctx context.Context, win Window) ([]models.GenreCount, error) {
	if !win.Valid() {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidWindow, win.StartYear, win.EndYear)
	}

	query := `
		SELECT genre, COUNT(*) AS movie_count
		FROM movies
		WHERE genre != '' AND year BETWEEN ? AND ?
		GROUP BY genre
		ORDER BY movie_count DESC, genre ASC`

	var results []models.GenreCount
	args := []interface{}{win.StartYear, win.EndYear}
	err := db.queryAndScan(ctx, "genre_distribution", query, args, func(rows *sql.Rows) error {
		var gc models.GenreCount
		if err := rows.Scan(&gc.Genre, &gc.MovieCount); err != nil {
			return err
		}
		results = append(results, gc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get genre distribution: %w", err)
	}

	return results, nil
}

// GetTopGenres returns the limit most frequent genres in the window, each
// with the mean rating and mean vote count of its movies. Movies without a
// rating still count toward the genre's movie count; AVG ignores nulls.
func (db *DB) GetTopGenres(ctx context.Context, win Window, limit int) ([]models.GenreRatingStats, error) {
	if !win.Valid() {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidWindow, win.StartYear, win.EndYear)
	}

	query := `
		SELECT
			genre,
			COUNT(*) AS movie_count,
			ROUND(COALESCE(AVG(rating), 0), 2) AS avg_rating,
			ROUND(COALESCE(AVG(votes), 0), 0) AS avg_votes
		FROM movies
		WHERE genre != '' AND year BETWEEN ? AND ?
		GROUP BY genre
		ORDER BY movie_count DESC, genre ASC
		LIMIT ?`

	var results []models.GenreRatingStats
	args := []interface{}{win.StartYear, win.EndYear, limit}
	err := db.queryAndScan(ctx, "top_genres", query, args, func(rows *sql.Rows) error {
		var gs models.GenreRatingStats
		if err := rows.Scan(&gs.Genre, &gs.MovieCount, &gs.AvgRating, &gs.AvgVotes); err != nil {
			return err
		}
		results = append(results, gs)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get top genres: %w", err)
	}

	return results, nil
}

// GetTopGenre returns the single most frequent genre in the window and its
// movie count.
func (db *DB) GetTopGenre(ctx context.Context, win Window) (string, int, error) {
	top, err := db.GetTopGenres(ctx, win, 1)
	if err != nil {
		return "", 0, err
	}
	if len(top) == 0 {
		return "", 0, ErrNoDataset
	}
	return top[0].Genre, top[0].MovieCount, nil
}
