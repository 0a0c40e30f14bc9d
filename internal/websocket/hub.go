// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package websocket

import (
	"context"
	"sort"
	"sync"

	"github.com/felixamado/cageography/internal/logging"
	"github.com/felixamado/cageography/internal/metrics"
)

// Message types pushed to dashboard clients.
const (
	MessageTypePing            = "ping"
	MessageTypePong            = "pong"
	MessageTypeDatasetReloaded = "dataset_reloaded"
	MessageTypeStatsUpdate     = "stats_update"
)

// Message is one WebSocket frame payload.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// DatasetReloadedEvent is broadcast after an admin-triggered reload so open
// dashboards refetch their charts.
type DatasetReloadedEvent struct {
	MovieCount int   `json:"movie_count"`
	DurationMS int64 `json:"duration_ms"`
}

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Message
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a hub ready to be supervised via RunWithContext.
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan Message, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// RunWithContext runs the hub loop until the context is canceled, then
// closes every client and returns ctx.Err().
//
// Selection is prioritized: shutdown first, then client lifecycle events,
// then broadcasts. Go's select picks randomly among ready channels; the
// staged checks keep client state consistent before messages flow.
func (h *Hub) RunWithContext(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		default:
		}

		select {
		case client := <-h.Register:
			h.addClient(client)
			continue
		case client := <-h.Unregister:
			h.removeClient(client)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		case client := <-h.Register:
			h.addClient(client)
		case client := <-h.Unregister:
			h.removeClient(client)
		case message := <-h.broadcast:
			h.broadcastToClients(message)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.mu.Unlock()

	metrics.WSConnections.Set(float64(total))
	logging.Info().Int("total_clients", total).Msg("websocket client connected")
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	total := len(h.clients)
	h.mu.Unlock()

	metrics.WSConnections.Set(float64(total))
	logging.Info().Int("total_clients", total).Msg("websocket client disconnected")
}

// broadcastToClients delivers a message to every client in ascending client
// ID order. Deterministic iteration keeps delivery order reproducible in
// tests; clients with a full send buffer are dropped.
func (h *Hub) broadcastToClients(message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})

	var toRemove []*Client
	for _, client := range clients {
		select {
		case client.send <- message:
			metrics.WSMessagesSent.Inc()
		default:
			toRemove = append(toRemove, client)
		}
	}

	for _, client := range toRemove {
		close(client.send)
		delete(h.clients, client)
	}
	if len(toRemove) > 0 {
		metrics.WSConnections.Set(float64(len(h.clients)))
	}
}

// shutdown closes every client and logs the reason. Context cancellation is
// the normal path here, so it is not logged as an error.
func (h *Hub) shutdown(ctx context.Context) {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})
	for _, client := range clients {
		close(client.send)
		delete(h.clients, client)
	}
	h.mu.Unlock()

	reason := "context_canceled"
	if ctx.Err() == context.DeadlineExceeded {
		reason = "context_deadline"
	}

	metrics.WSConnections.Set(0)
	logging.Info().
		Str("component", "websocket-hub").
		Str("reason", reason).
		Int("clients_closed", len(clients)).
		Msg("websocket hub stopped")
}

// BroadcastDatasetReloaded notifies clients that the dataset was re-ingested.
func (h *Hub) BroadcastDatasetReloaded(movieCount int, durationMS int64) {
	h.BroadcastJSON(MessageTypeDatasetReloaded, DatasetReloadedEvent{
		MovieCount: movieCount,
		DurationMS: durationMS,
	})
}

// BroadcastJSON queues a typed message for all connected clients. Messages
// are dropped when the broadcast queue is full rather than blocking callers.
func (h *Hub) BroadcastJSON(messageType string, data interface{}) {
	message := Message{Type: messageType, Data: data}
	select {
	case h.broadcast <- message:
	default:
		logging.Warn().Str("type", messageType).Msg("broadcast channel full, dropping message")
	}
}

// GetClientCount returns the number of connected clients.
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
