// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Pollcast API.

# Handler Types

Each handler is a struct with its dependencies injected:

  - AdminHandler: poll lifecycle (create, list, status, close, delete)
  - VotingHandler: public poll retrieval and vote recording
  - QRHandler: per-question QR payloads and the printable sheet
  - WSHandler: WebSocket subscriptions to per-poll rooms

Handlers are created via constructor functions:

	adminHandler := handlers.NewAdminHandler(db, cfg, hub)
	votingHandler := handlers.NewVotingHandler(db, cfg)

# Admin Lifecycle

Admin requests authenticate with a plaintext password field in the body;
an incorrect password never mutates state.

	POST   /api/admin/polls             → CreatePoll (atomic insert of poll+questions+options)
	POST   /api/admin/polls/list        → ListPolls (every poll, newest first, participant_count)
	PUT    /api/admin/polls/{id}/status → SetStatus (toggle active, works on closed polls)
	PUT    /api/admin/polls/{id}/close  → ClosePoll (one-way; broadcasts pollClosed)
	DELETE /api/admin/polls/{id}        → DeletePoll (any state, cascades)

Closing twice leaves closed=true but broadcasts again; each close call
re-notifies the room.

# Voting Flow

	GET  /api/polls/{id} → GetPoll (active polls only; closed ones stay visible)
	POST /api/votes      → SubmitVotes (one vote row per option, session-scoped)

Vote submissions without a sessionId get a generated UUID back and reuse
it for later submissions. participant_count deduplicates by session.

# QR Codes

	GET /api/qr/poll/{id}/questions → JSON entries {questionText, qrCode, url}
	GET /api/qr/poll/{id}/print     → printable HTML sheet

Each URL targets the mobile voting page /mobile/{pollId}/{questionId}.

# WebSocket

	GET /ws/poll/{id} → Subscribe

One event type is emitted, pollClosed, carrying {pollId}.
*/
package handlers
