// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// Event is the single frame shape sent to subscribers.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// PollClosed builds the event broadcast when an admin closes a poll.
func PollClosed(pollID string) Event {
	return Event{
		Type: "pollClosed",
		Data: map[string]string{"pollId": pollID},
	}
}

// Hub tracks WebSocket connections grouped into per-poll rooms.
// Delivery is at-most-once and best-effort: there is no acknowledgement,
// no retry, and nothing is kept for subscribers that join later.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]bool),
	}
}

// Subscribe adds a connection to a poll's room.
func (h *Hub) Subscribe(pollID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[pollID] == nil {
		h.rooms[pollID] = make(map[*websocket.Conn]bool)
	}
	h.rooms[pollID][conn] = true
	slog.Info("ws client subscribed", "poll_id", pollID, "room_size", len(h.rooms[pollID]))
}

// Unsubscribe removes a connection from a poll's room and closes it.
func (h *Hub) Unsubscribe(pollID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.rooms[pollID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.rooms, pollID)
		}
		slog.Info("ws client unsubscribed", "poll_id", pollID)
	}
}

// Broadcast sends one event to every connection in the poll's room.
// Connections whose write fails are evicted.
func (h *Hub) Broadcast(pollID string, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.rooms[pollID]
	if !ok {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("ws marshal failed", "error", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			slog.Warn("ws write failed, evicting connection", "poll_id", pollID, "error", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}

// RoomSize reports the number of live subscribers for a poll.
func (h *Hub) RoomSize(pollID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[pollID])
}
