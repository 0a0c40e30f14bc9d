// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

// Package config loads and validates application configuration using
// Koanf v2 with layered sources: built-in defaults, an optional YAML file,
// and environment variables (highest priority).
package config
