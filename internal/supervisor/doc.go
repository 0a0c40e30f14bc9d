// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

// Package supervisor builds the suture v4 supervision tree that runs the
// long-lived services: the WebSocket hub in the messaging layer and the HTTP
// server in the API layer. Supervisor events are logged through sutureslog,
// bridged into the global zerolog logger.
package supervisor
