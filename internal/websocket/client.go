// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package websocket

import (
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/felixamado/cageography/internal/logging"
	"github.com/felixamado/cageography/internal/metrics"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024 // dashboard clients only send pings
)

// clientIDCounter hands out monotonically increasing IDs so broadcasts can
// iterate clients in a stable order.
var clientIDCounter atomic.Uint64

// Client relays messages between one WebSocket connection and the hub.
type Client struct {
	id   uint64
	hub  *Hub
	conn *websocket.Conn
	send chan Message
}

// NewClient wraps an upgraded connection.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:   clientIDCounter.Add(1),
		hub:  hub,
		conn: conn,
		send: make(chan Message, 256),
	}
}

// ID returns the client's unique identifier.
func (c *Client) ID() uint64 {
	return c.id
}

// Start launches the read and write pumps.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}

// readPump consumes inbound frames, answering pings until the connection
// closes, then unregisters the client.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logging.Error().Err(err).Msg("failed to set read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Error().Err(err).Msg("unexpected websocket close error")
			}
			break
		}
		metrics.WSMessagesReceived.Inc()

		if msg.Type == MessageTypePing {
			select {
			case c.send <- Message{Type: MessageTypePong}:
			default:
			}
		}
	}
}

// writePump writes queued messages and keepalive pings to the connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logging.Error().Err(err).Msg("failed to set write deadline")
				return
			}
			if !ok {
				// The hub closed the channel.
				if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logging.Error().Err(err).Msg("failed to write close message")
				}
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				logging.Error().Err(err).Msg("failed to write JSON message")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
