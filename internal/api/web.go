// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package api

import (
	_ "embed"
	"net/http"

	"github.com/felixamado/cageography/internal/logging"
)

//go:embed web/index.html
var indexHTML []byte

// Dashboard serves the embedded single-page dashboard. Chart rendering and
// styling live client-side; the page only needs the JSON endpoints.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	if _, err := w.Write(indexHTML); err != nil {
		logging.Error().Err(err).Msg("Failed to write dashboard page")
	}
}
