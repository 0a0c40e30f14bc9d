// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

/*
Package api implements the HTTP surface: chi routing, the request handlers,
and the middleware factories for CORS and rate limiting.

Every endpoint responds in a standard envelope:

	{
	  "status": "success" | "error",
	  "data": ...,
	  "metadata": {"timestamp": ..., "query_time_ms": ..., "cached": ...},
	  "error": {"code": ..., "message": ..., "details": ...}
	}

Analytics endpoints are cache-first with a TTL from config; the cache is
cleared when the dataset is reloaded via POST /api/v1/reload.
*/
package api
