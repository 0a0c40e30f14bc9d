// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/felixamado/cageography/internal/logging"
	"github.com/felixamado/cageography/internal/models"
	"github.com/felixamado/cageography/internal/validation"
)

// sanitizeLogValue removes control characters from strings before logging,
// preventing log injection through attacker-controlled values.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with caching headers and an ETag.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a weak ETag from the payload using FNV-1a.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondError sends a structured error response.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().
			Str("code", sanitizeLogValue(code)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondSuccess wraps data in the standard success envelope.
func respondSuccess(w http.ResponseWriter, data interface{}, queryTime time.Duration, cached bool) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: queryTime.Milliseconds(),
			Cached:      cached,
		},
	})
}

// validateRequest validates a struct, returning a models.APIError on failure.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}
	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// getIntParam extracts an integer query parameter with a default value.
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}
