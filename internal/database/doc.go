// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

/*
Package database provides the DuckDB-backed analytics store.

The normalized filmography lives in a single movies table that is replaced
wholesale on each ingest. All chart payloads are computed with DuckDB SQL
aggregations: genre distribution, top-rated ranking, the rating histogram,
and per-interval reception statistics.

Analytics queries take an explicit Window (inclusive year range) and only
aggregate releases inside it. Interval queries additionally take a bucket
width; buckets are floor(year/width)*width and are gap-filled in Go so the
emitted buckets always partition the windowed range.
*/
package database
