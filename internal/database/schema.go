// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package database

import (
	"context"
	"fmt"
	"time"
)

// createTables creates the movies table. The table is the single source the
// analytics queries aggregate over; it is replaced wholesale on each ingest.
//
// Nullable columns hold values the CSV could not provide or could not parse
// (lenient coercion stores null rather than dropping the row).
func (db *DB) createTables() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	schema := `
	CREATE TABLE IF NOT EXISTS movies (
		id UUID PRIMARY KEY,
		title VARCHAR NOT NULL,
		year INTEGER NOT NULL,
		genre VARCHAR NOT NULL DEFAULT '',
		director VARCHAR NOT NULL DEFAULT '',
		cast_list VARCHAR NOT NULL DEFAULT '',
		rating DOUBLE,
		votes BIGINT,
		metascore DOUBLE,
		review_count BIGINT,
		url VARCHAR NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (title, year)
	)`

	if _, err := db.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create movies table: %w", err)
	}

	return nil
}
