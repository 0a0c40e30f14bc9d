// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package models

import "time"

// GenreCount represents the number of movies tagged with a genre.
// Because ingest reduces every movie to its first genre tag, the counts
// across all genres sum to the total number of deduplicated movies.
type GenreCount struct {
	Genre      string `json:"genre"`
	MovieCount int    `json:"movie_count"`
}

// TopRatedMovie is one row of the top-rated table.
// Rating is rounded to one decimal for display parity with the dashboard.
type TopRatedMovie struct {
	Title  string  `json:"title"`
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
	Votes  int64   `json:"votes"`
}

// RatingBucket is one 1.0-wide histogram bin of audience ratings.
// Bins are left-closed: a bucket with Low=6 covers ratings in [6.0, 7.0).
type RatingBucket struct {
	Low        int `json:"low"`
	High       int `json:"high"`
	MovieCount int `json:"movie_count"`
}

// GenreRatingStats holds per-genre aggregates for the top-genre ranking chart.
type GenreRatingStats struct {
	Genre      string  `json:"genre"`
	MovieCount int     `json:"movie_count"`
	AvgRating  float64 `json:"avg_rating"`
	AvgVotes   float64 `json:"avg_votes"`
}

// IntervalReception aggregates critical reception over one 5-year bucket.
// AvgMetascore is nil when no movie in the bucket carries a metascore;
// the bucket itself is still emitted so intervals stay gap-free.
type IntervalReception struct {
	IntervalStart int      `json:"interval_start"`
	IntervalEnd   int      `json:"interval_end"`
	MovieCount    int      `json:"movie_count"`
	AvgMetascore  *float64 `json:"avg_metascore,omitempty"`
	ReviewCount   int64    `json:"review_count"`
}

// GenreIntervalStats aggregates audience reception of a single genre
// over one 5-year bucket.
type GenreIntervalStats struct {
	IntervalStart int      `json:"interval_start"`
	IntervalEnd   int      `json:"interval_end"`
	MovieCount    int      `json:"movie_count"`
	AvgRating     *float64 `json:"avg_rating,omitempty"`
	ReviewCount   int64    `json:"review_count"`
}

// UpcomingMovie is a scheduled future premiere.
type UpcomingMovie struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	URL   string `json:"url,omitempty"`
}

// FilmographySummary is the career summary shown at the top of the dashboard.
type FilmographySummary struct {
	Actor           string          `json:"actor"`
	TotalMovies     int             `json:"total_movies"`
	TopGenre        string          `json:"top_genre"`
	TopGenreCount   int             `json:"top_genre_count"`
	FirstMovieTitle string          `json:"first_movie_title"`
	FirstMovieYear  int             `json:"first_movie_year"`
	Upcoming        []UpcomingMovie `json:"upcoming"`
}

// DatasetStats describes the currently loaded dataset.
type DatasetStats struct {
	TotalMovies int        `json:"total_movies"`
	YearMin     int        `json:"year_min"`
	YearMax     int        `json:"year_max"`
	SourcePath  string     `json:"source_path,omitempty"`
	SkippedRows int        `json:"skipped_rows"`
	LoadedAt    *time.Time `json:"loaded_at,omitempty"`
}

// HealthStatus represents the health check response.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	DatasetLoaded     bool    `json:"dataset_loaded"`
	MovieCount        int     `json:"movie_count"`
	Uptime            float64 `json:"uptime_seconds"`
}
