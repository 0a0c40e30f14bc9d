// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

// Package middleware provides HTTP middleware shared by all routes:
// request ID propagation and Prometheus request instrumentation.
package middleware
