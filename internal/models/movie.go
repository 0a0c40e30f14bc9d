// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package models

import "time"

// Movie is a single normalized filmography record.
//
// Rows originate from the IMDb CSV export and are normalized during ingest:
// Title/Genre/Director/Cast are title-cased, Genre is reduced to the first
// comma-separated tag, and Votes has its comma thousands separators removed.
//
// Numeric fields that can be missing or malformed in the source data
// (Rating, Votes, Metascore, ReviewCount) are pointers; nil means the value
// was absent or unparseable. Rows are kept even when these are nil.
type Movie struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Year        int        `json:"year"`
	Genre       string     `json:"genre"`
	Director    string     `json:"director,omitempty"`
	Cast        string     `json:"cast,omitempty"`
	Rating      *float64   `json:"rating,omitempty"`
	Votes       *int64     `json:"votes,omitempty"`
	Metascore   *float64   `json:"metascore,omitempty"`
	ReviewCount *int64     `json:"review_count,omitempty"`
	URL         string     `json:"url,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}
