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

// GetTopRated returns the limit highest-rated movies in the window. Ordering
// is deterministic: rating descending, then vote count descending as the
// tie-break, then title ascending. Movies without a rating are excluded;
// a missing vote count ties below any known count.
func (db *DB) GetTopRated(ctx context.Context, win Window, limit int) ([]models.TopRatedMovie, error) {
	if !win.Valid() {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidWindow, win.StartYear, win.EndYear)
	}

	query := `
		SELECT title, year, ROUND(rating, 1) AS rating, COALESCE(votes, 0) AS votes
		FROM movies
		WHERE rating IS NOT NULL AND year BETWEEN ? AND ?
		ORDER BY rating DESC, COALESCE(votes, 0) DESC, title ASC
		LIMIT ?`

	var results []models.TopRatedMovie
	args := []interface{}{win.StartYear, win.EndYear, limit}
	err := db.queryAndScan(ctx, "top_rated", query, args, func(rows *sql.Rows) error {
		var m models.TopRatedMovie
		if err := rows.Scan(&m.Title, &m.Year, &m.Rating, &m.Votes); err != nil {
			return err
		}
		results = append(results, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get top rated movies: %w", err)
	}

	return results, nil
}

// GetRatingDistribution returns the histogram of windowed ratings in
// 1.0-wide left-closed bins over [low, high). Empty bins are emitted with
// zero counts so the histogram has no gaps; ratings outside the range are
// not counted.
func (db *DB) GetRatingDistribution(ctx context.Context, win Window, low, high int) ([]models.RatingBucket, error) {
	if !win.Valid() {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidWindow, win.StartYear, win.EndYear)
	}
	if high <= low {
		return nil, fmt.Errorf("%w: rating range [%d, %d)", ErrInvalidWindow, low, high)
	}

	query := `
		SELECT CAST(FLOOR(rating) AS INTEGER) AS bin, COUNT(*) AS movie_count
		FROM movies
		WHERE rating IS NOT NULL AND rating >= ? AND rating < ?
		  AND year BETWEEN ? AND ?
		GROUP BY bin`

	counts := make(map[int]int)
	args := []interface{}{low, high, win.StartYear, win.EndYear}
	err := db.queryAndScan(ctx, "rating_distribution", query, args, func(rows *sql.Rows) error {
		var bin, count int
		if err := rows.Scan(&bin, &count); err != nil {
			return err
		}
		counts[bin] = count
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get rating distribution: %w", err)
	}

	// Gap-fill so the bins partition [low, high).
	buckets := make([]models.RatingBucket, 0, high-low)
	for b := low; b < high; b++ {
		buckets = append(buckets, models.RatingBucket{
			Low:        b,
			High:       b + 1,
			MovieCount: counts[b],
		})
	}

	return buckets, nil
}
