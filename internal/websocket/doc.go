// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

// Package websocket implements the hub that pushes dataset_reloaded and
// stats_update events to connected dashboard clients. The hub runs under
// supervision via RunWithContext and closes all clients on shutdown.
package websocket
