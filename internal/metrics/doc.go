// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

/*
Package metrics provides Prometheus instrumentation for the service.

Exported collectors cover DuckDB query latency and errors, API request
throughput and latency, analytics cache efficiency, dataset ingest passes,
and WebSocket connection counts. Metrics are exposed at /metrics in
Prometheus text format.

All collectors are registered via promauto at package init and are safe for
concurrent use. Label cardinality is kept low: endpoint labels use chi route
patterns rather than raw URLs, and error types are fixed constants.
*/
package metrics
