// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/felixamado/cageography/internal/logging"
	"github.com/felixamado/cageography/internal/models"
)

// ErrEmptyDataset is returned when no rows survive filtering. A dataset with
// zero matching movies is a configuration error, not an empty dashboard.
var ErrEmptyDataset = errors.New("no movies matched the configured actor")

// LoadStats summarizes a single ingest pass for logging and the
// server-info endpoint.
type LoadStats struct {
	TotalRows   int
	Matched     int
	Duplicates  int
	SkippedRows int
}

// columnAliases maps canonical field names to the header spellings accepted
// in the CSV. Matching is case-insensitive after trimming.
var columnAliases = map[string][]string{
	"title":        {"title"},
	"year":         {"year"},
	"genre":        {"genre"},
	"director":     {"director"},
	"cast":         {"cast", "actors", "stars"},
	"rating":       {"rating", "imdb rating"},
	"metascore":    {"metascore"},
	"votes":        {"votes"},
	"review_count": {"review count", "reviews"},
	"url":          {"url", "poster", "link"},
}

// LoadCSV reads the CSV at path and returns the normalized, filtered,
// deduplicated filmography of the given actor.
//
// Pipeline per row: normalize names (lowercase, trim, Title Case), reduce
// Genre to its first comma-separated tag, strip comma separators from Votes,
// coerce numeric columns leniently (unparseable becomes nil, row kept),
// keep only rows whose Cast mentions the actor, then drop duplicate
// (Title, Year) pairs keeping the first occurrence.
//
// Rows without a usable Title or Year are skipped and counted; the loader
// fails only when the file is unreadable, the header is missing required
// columns, or zero rows survive.
func LoadCSV(path, actor string) ([]models.Movie, LoadStats, error) {
	var stats LoadStats

	f, err := os.Open(path)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are tolerated, missing cells read empty
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, stats, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, stats, err
	}

	seen := make(map[string]struct{})
	now := time.Now().UTC()
	var movies []models.Movie

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("failed to read CSV row %d: %w", stats.TotalRows+2, err)
		}
		stats.TotalRows++

		cell := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return record[idx]
		}

		if !containsActor(cell("cast"), actor) {
			continue
		}
		stats.Matched++

		title := normalizeName(cell("title"))
		year := parseYear(cell("year"))
		if title == "" || year == 0 {
			stats.SkippedRows++
			logging.Warn().
				Int("row", stats.TotalRows+1).
				Str("title", cell("title")).
				Str("year", cell("year")).
				Msg("Skipping row without usable title or year")
			continue
		}

		key := fmt.Sprintf("%s|%d", title, year)
		if _, dup := seen[key]; dup {
			stats.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		created := now
		movies = append(movies, models.Movie{
			ID:          uuid.NewString(),
			Title:       title,
			Year:        year,
			Genre:       firstGenre(cell("genre")),
			Director:    normalizeName(cell("director")),
			Cast:        normalizeName(cell("cast")),
			Rating:      parseFloatField(cell("rating")),
			Votes:       parseVotes(cell("votes")),
			Metascore:   parseFloatField(cell("metascore")),
			ReviewCount: parseIntField(cell("review_count")),
			URL:         strings.TrimSpace(cell("url")),
			CreatedAt:   &created,
		})
	}

	if len(movies) == 0 {
		return nil, stats, fmt.Errorf("%w: %s in %s", ErrEmptyDataset, actor, path)
	}

	logging.Info().
		Str("path", path).
		Str("actor", actor).
		Int("total_rows", stats.TotalRows).
		Int("matched", stats.Matched).
		Int("duplicates", stats.Duplicates).
		Int("skipped", stats.SkippedRows).
		Int("loaded", len(movies)).
		Msg("Dataset loaded")

	return movies, stats, nil
}

// mapColumns resolves the header to canonical column indexes.
func mapColumns(header []string) (map[string]int, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.ToLower(strings.TrimSpace(h))] = i
	}

	cols := make(map[string]int, len(columnAliases))
	for canonical, aliases := range columnAliases {
		for _, alias := range aliases {
			if idx, ok := byName[alias]; ok {
				cols[canonical] = idx
				break
			}
		}
	}

	for _, required := range []string{"title", "year", "cast"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("CSV header is missing required column %q", required)
		}
	}
	return cols, nil
}
