// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

// Package cache provides the TTL cache that sits in front of the analytics
// queries. Keys are derived from the query name plus a hash of its
// parameters; the whole cache is cleared when the dataset is reloaded.
package cache
