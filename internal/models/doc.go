// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

// Package models defines the shared data structures exchanged between the
// dataset loader, the database layer, and the HTTP API: the normalized Movie
// record, aggregate statistics for each chart, and the API response envelope.
package models
