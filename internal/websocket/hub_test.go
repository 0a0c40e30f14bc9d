// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient builds a client without a live connection; only the send
// channel and ID matter for hub logic.
func newTestClient(hub *Hub) *Client {
	return &Client{
		id:   clientIDCounter.Add(1),
		hub:  hub,
		send: make(chan Message, 256),
	}
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- hub.RunWithContext(ctx) }()

	client := newTestClient(hub)
	hub.Register <- client
	require.Eventually(t, func() bool {
		return hub.GetClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	hub.Unregister <- client
	require.Eventually(t, func() bool {
		return hub.GetClientCount() == 0
	}, time.Second, 10*time.Millisecond)

	cancel()
	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHubBroadcastDatasetReloaded(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = hub.RunWithContext(ctx) }()

	c1 := newTestClient(hub)
	c2 := newTestClient(hub)
	hub.Register <- c1
	hub.Register <- c2
	require.Eventually(t, func() bool {
		return hub.GetClientCount() == 2
	}, time.Second, 10*time.Millisecond)

	hub.BroadcastDatasetReloaded(42, 137)

	for _, c := range []*Client{c1, c2} {
		select {
		case msg := <-c.send:
			assert.Equal(t, MessageTypeDatasetReloaded, msg.Type)
			event, ok := msg.Data.(DatasetReloadedEvent)
			require.True(t, ok)
			assert.Equal(t, 42, event.MovieCount)
			assert.Equal(t, int64(137), event.DurationMS)
		case <-time.After(time.Second):
			t.Fatal("client did not receive broadcast")
		}
	}
}

func TestHubShutdownClosesClients(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- hub.RunWithContext(ctx) }()

	client := newTestClient(hub)
	hub.Register <- client
	require.Eventually(t, func() bool {
		return hub.GetClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
	assert.Equal(t, 0, hub.GetClientCount())

	// The send channel is closed so the write pump exits.
	_, open := <-client.send
	assert.False(t, open)
}

func TestHubDropsSlowClients(t *testing.T) {
	hub := NewHub()

	slow := &Client{
		id:   clientIDCounter.Add(1),
		hub:  hub,
		send: make(chan Message), // unbuffered, nothing reading
	}
	hub.clients[slow] = true

	hub.broadcastToClients(Message{Type: MessageTypeStatsUpdate})

	assert.Equal(t, 0, hub.GetClientCount(), "client with a full buffer is dropped")
}
