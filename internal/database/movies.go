// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/felixamado/cageography/internal/models"
)

// GetMovies returns a page of filmography rows ordered by year descending
// then title, plus the total row count for pagination.
func (db *DB) GetMovies(ctx context.Context, limit, offset int) ([]models.Movie, int, error) {
	total, err := db.CountMovies(ctx)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, title, year, genre, director, cast_list,
		       rating, votes, metascore, review_count, url, created_at
		FROM movies
		ORDER BY year DESC, title ASC
		LIMIT ? OFFSET ?`

	var movies []models.Movie
	err = db.queryAndScan(ctx, "get_movies", query, []interface{}{limit, offset}, func(rows *sql.Rows) error {
		var m models.Movie
		if err := rows.Scan(
			&m.ID, &m.Title, &m.Year, &m.Genre, &m.Director, &m.Cast,
			&m.Rating, &m.Votes, &m.Metascore, &m.ReviewCount, &m.URL, &m.CreatedAt,
		); err != nil {
			return err
		}
		movies = append(movies, m)
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get movies: %w", err)
	}

	return movies, total, nil
}

// CountMovies returns the number of loaded movies.
func (db *DB) CountMovies(ctx context.Context) (int, error) {
	var count int
	err := db.queryRow(ctx, "count_movies", "SELECT COUNT(*) FROM movies", nil, &count)
	if err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return count, nil
}

// GetUpcoming returns scheduled premieres: movies released in or after the
// horizon year, ordered by year then title.
func (db *DB) GetUpcoming(ctx context.Context, horizonYear int) ([]models.UpcomingMovie, error) {
	query := `
		SELECT title, year, url
		FROM movies
		WHERE year >= ?
		ORDER BY year ASC, title ASC`

	var results []models.UpcomingMovie
	err := db.queryAndScan(ctx, "upcoming", query, []interface{}{horizonYear}, func(rows *sql.Rows) error {
		var m models.UpcomingMovie
		if err := rows.Scan(&m.Title, &m.Year, &m.URL); err != nil {
			return err
		}
		results = append(results, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming premieres: %w", err)
	}

	return results, nil
}

// GetSummary assembles the career summary over the window: total movies, the
// dominant genre with its count, the earliest movie. Upcoming premieres sit
// outside the window by construction and are read from the full table.
func (db *DB) GetSummary(ctx context.Context, actor string, win Window, horizonYear int) (*models.FilmographySummary, error) {
	if !win.Valid() {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidWindow, win.StartYear, win.EndYear)
	}

	var total int
	err := db.queryRow(ctx, "count_movies_windowed",
		"SELECT COUNT(*) FROM movies WHERE year BETWEEN ? AND ?",
		[]interface{}{win.StartYear, win.EndYear}, &total)
	if err != nil {
		return nil, fmt.Errorf("failed to count windowed movies: %w", err)
	}
	if total == 0 {
		return nil, ErrNoDataset
	}

	topGenre, topCount, err := db.GetTopGenre(ctx, win)
	if err != nil {
		return nil, err
	}

	var firstTitle string
	var firstYear int
	err = db.queryRow(ctx, "first_movie",
		"SELECT title, year FROM movies WHERE year BETWEEN ? AND ? ORDER BY year ASC, title ASC LIMIT 1",
		[]interface{}{win.StartYear, win.EndYear}, &firstTitle, &firstYear)
	if err != nil {
		return nil, fmt.Errorf("failed to get first movie: %w", err)
	}

	upcoming, err := db.GetUpcoming(ctx, horizonYear)
	if err != nil {
		return nil, err
	}

	return &models.FilmographySummary{
		Actor:           actor,
		TotalMovies:     total,
		TopGenre:        topGenre,
		TopGenreCount:   topCount,
		FirstMovieTitle: firstTitle,
		FirstMovieYear:  firstYear,
		Upcoming:        upcoming,
	}, nil
}

// GetDatasetStats returns row count and year range of the loaded dataset.
func (db *DB) GetDatasetStats(ctx context.Context) (models.DatasetStats, error) {
	var stats models.DatasetStats
	var yearMin, yearMax sql.NullInt64

	err := db.queryRow(ctx, "dataset_stats",
		"SELECT COUNT(*), MIN(year), MAX(year) FROM movies",
		nil, &stats.TotalMovies, &yearMin, &yearMax)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return models.DatasetStats{}, fmt.Errorf("failed to get dataset stats: %w", err)
	}

	stats.YearMin = int(yearMin.Int64)
	stats.YearMax = int(yearMax.Int64)
	return stats, nil
}
