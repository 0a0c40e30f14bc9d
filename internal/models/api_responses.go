// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package models

import "time"

// APIResponse is the standardized response wrapper used by all HTTP endpoints.
// It provides a consistent structure for both successful and error responses,
// with metadata for observability and caching.
//
// Status is "success" or "error". Data carries the payload on success; Error
// is populated only on failure.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": [{"genre": "Action", "movie_count": 22}],
//	  "metadata": {"timestamp": "2026-01-10T12:00:00Z", "query_time_ms": 4}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// QueryTimeMS is the database execution time in milliseconds (0 when the
// response was served from cache, in which case Cached is true).
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured details.
//
// Common codes: VALIDATION_ERROR, DATABASE_ERROR, NOT_FOUND,
// METHOD_NOT_ALLOWED, RATE_LIMIT_EXCEEDED, INTERNAL_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// MovieList is a paginated page of filmography rows.
type MovieList struct {
	Movies []Movie `json:"movies"`
	Total  int     `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

// ServerInfo describes the running server for the dashboard footer.
type ServerInfo struct {
	Version   string       `json:"version"`
	Uptime    float64      `json:"uptime_seconds"`
	Actor     string       `json:"actor"`
	Dataset   DatasetStats `json:"dataset"`
	StartedAt time.Time    `json:"started_at"`
}
