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

// GetReceptionByInterval aggregates critical reception per interval bucket
// within the window: mean Metascore and total review count. Movies without
// a metascore still count toward the bucket's movie count; AVG ignores
// nulls, so a bucket where no movie carries a metascore reports nil.
//
// Buckets are floor(year/width)*width. Every bucket covering the window is
// emitted, including empty ones, so the buckets partition the windowed
// range with no overlaps or gaps.
func (db *DB) GetReceptionByInterval(ctx context.Context, win Window, width int) ([]models.IntervalReception, error) {
	if !win.Valid() {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidWindow, win.StartYear, win.EndYear)
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: interval width %d", ErrInvalidWindow, width)
	}

	query := `
		SELECT
			(year // ?) * ? AS interval_start,
			COUNT(*) AS movie_count,
			ROUND(AVG(metascore), 2) AS avg_metascore,
			COALESCE(SUM(review_count), 0) AS review_count
		FROM movies
		WHERE year BETWEEN ? AND ?
		GROUP BY interval_start`

	type bucketRow struct {
		movieCount   int
		avgMetascore sql.NullFloat64
		reviewCount  int64
	}
	byStart := make(map[int]bucketRow)

	args := []interface{}{width, width, win.StartYear, win.EndYear}
	err := db.queryAndScan(ctx, "reception_intervals", query, args, func(rows *sql.Rows) error {
		var start int
		var row bucketRow
		if err := rows.Scan(&start, &row.movieCount, &row.avgMetascore, &row.reviewCount); err != nil {
			return err
		}
		byStart[start] = row
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get reception by interval: %w", err)
	}

	results := make([]models.IntervalReception, 0, len(win.Buckets(width)))
	for _, start := range win.Buckets(width) {
		ir := models.IntervalReception{
			IntervalStart: start,
			IntervalEnd:   start + width - 1,
		}
		if row, ok := byStart[start]; ok {
			ir.MovieCount = row.movieCount
			ir.ReviewCount = row.reviewCount
			if row.avgMetascore.Valid {
				v := row.avgMetascore.Float64
				ir.AvgMetascore = &v
			}
		}
		results = append(results, ir)
	}

	return results, nil
}

// GetTopGenreIntervals aggregates audience reception of the dominant genre
// per interval bucket within the window: mean rating and total review
// count, restricted to movies of that genre. Gap-filling matches
// GetReceptionByInterval.
func (db *DB) GetTopGenreIntervals(ctx context.Context, win Window, width int) (string, []models.GenreIntervalStats, error) {
	if !win.Valid() {
		return "", nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidWindow, win.StartYear, win.EndYear)
	}
	if width <= 0 {
		return "", nil, fmt.Errorf("%w: interval width %d", ErrInvalidWindow, width)
	}

	topGenre, _, err := db.GetTopGenre(ctx, win)
	if err != nil {
		return "", nil, err
	}

	query := `
		SELECT
			(year // ?) * ? AS interval_start,
			COUNT(*) AS movie_count,
			ROUND(AVG(rating), 2) AS avg_rating,
			COALESCE(SUM(review_count), 0) AS review_count
		FROM movies
		WHERE genre = ? AND year BETWEEN ? AND ?
		GROUP BY interval_start`

	type bucketRow struct {
		movieCount  int
		avgRating   sql.NullFloat64
		reviewCount int64
	}
	byStart := make(map[int]bucketRow)

	args := []interface{}{width, width, topGenre, win.StartYear, win.EndYear}
	err = db.queryAndScan(ctx, "top_genre_intervals", query, args, func(rows *sql.Rows) error {
		var start int
		var row bucketRow
		if err := rows.Scan(&start, &row.movieCount, &row.avgRating, &row.reviewCount); err != nil {
			return err
		}
		byStart[start] = row
		return nil
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to get top genre intervals: %w", err)
	}

	results := make([]models.GenreIntervalStats, 0, len(win.Buckets(width)))
	for _, start := range win.Buckets(width) {
		gs := models.GenreIntervalStats{
			IntervalStart: start,
			IntervalEnd:   start + width - 1,
		}
		if row, ok := byStart[start]; ok {
			gs.MovieCount = row.movieCount
			gs.ReviewCount = row.reviewCount
			if row.avgRating.Valid {
				v := row.avgRating.Float64
				gs.AvgRating = &v
			}
		}
		results = append(results, gs)
	}

	return topGenre, results, nil
}
