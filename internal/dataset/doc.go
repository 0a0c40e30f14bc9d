// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

// Package dataset loads the IMDb-style CSV, normalizes and filters it down
// to one actor's filmography, and ingests the result into the analytics
// database. Normalization rules: names are lowercased, trimmed, and
// Title-Cased; Genre keeps only its first comma-separated tag; numeric
// columns are coerced leniently with unparseable values stored as null.
package dataset
