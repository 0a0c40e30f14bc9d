// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package services

import "context"

// ContextHub matches *websocket.Hub's RunWithContext method without importing
// the websocket package.
type ContextHub interface {
	RunWithContext(ctx context.Context) error
}

// WebSocketHubService wraps the dashboard hub as a supervised service. The
// hub's RunWithContext already follows the suture.Service pattern, so this
// wrapper only supplies a name for logging.
type WebSocketHubService struct {
	hub  ContextHub
	name string
}

// NewWebSocketHubService creates the wrapper.
func NewWebSocketHubService(hub ContextHub) *WebSocketHubService {
	return &WebSocketHubService{
		hub:  hub,
		name: "websocket-hub",
	}
}

// Serve implements suture.Service.
func (w *WebSocketHubService) Serve(ctx context.Context) error {
	return w.hub.RunWithContext(ctx)
}

// String implements fmt.Stringer; suture uses it in log messages.
func (w *WebSocketHubService) String() string {
	return w.name
}
