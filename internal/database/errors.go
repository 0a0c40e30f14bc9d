// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package database

import "errors"

var (
	// ErrNoDataset indicates the movies table is empty; the caller should
	// ingest before querying.
	ErrNoDataset = errors.New("no movies loaded")

	// ErrInvalidWindow indicates a window whose start exceeds its end.
	ErrInvalidWindow = errors.New("invalid year window")
)
