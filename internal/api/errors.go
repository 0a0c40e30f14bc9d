// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package api

// Error codes returned in APIError.Code.
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeDatabase         = "DATABASE_ERROR"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeServiceError     = "SERVICE_ERROR"
	ErrCodeReloadFailed     = "RELOAD_FAILED"
	ErrCodeInternal         = "INTERNAL_ERROR"
)
