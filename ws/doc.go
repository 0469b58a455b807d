// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ws implements the real-time notifier: per-poll rooms of WebSocket
connections and a broadcast primitive.

# Rooms

Each open voting session subscribes to the room of the poll it is viewing:

	hub := ws.NewHub()
	hub.Subscribe(pollID, conn)
	defer hub.Unsubscribe(pollID, conn)

# Broadcasting

Closing a poll publishes one event to its room:

	hub.Broadcast(pollID, ws.PollClosed(pollID))

The frame is a single JSON object:

	{"type": "pollClosed", "data": {"pollId": "<id>"}}

# Delivery Semantics

At-most-once, best-effort. Connected subscribers receive the event once
per broadcast; a failed write evicts the connection. Nothing is persisted
for late joiners - clients that reconnect reconcile by fetching the poll,
whose closed flag is durable.
*/
package ws
