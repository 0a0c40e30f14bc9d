// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

// Package validation wraps go-playground/validator v10 behind a singleton
// instance and translates field failures into the API's structured
// VALIDATION_ERROR payload.
package validation
