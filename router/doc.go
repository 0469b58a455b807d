// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Pollcast server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, hub)

# Endpoints

Health:

	GET /health

Admin (password in JSON body):

	POST   /api/admin/polls             - Create poll
	POST   /api/admin/polls/list        - List all polls with participant counts
	PUT    /api/admin/polls/{id}/status - Set active flag
	PUT    /api/admin/polls/{id}/close  - Close voting, broadcast pollClosed
	DELETE /api/admin/polls/{id}        - Delete poll

Voting (public):

	GET  /api/polls/{id} - Poll with ordered questions and options
	POST /api/votes      - Record votes for a session

QR codes:

	GET /api/qr/poll/{id}/questions - QR metadata per question
	GET /api/qr/poll/{id}/print     - Printable QR sheet (HTML)

Real-time:

	GET /ws/poll/{id} - WebSocket subscription to the poll's room

Static:

	GET /mobile/{pollId}[/{questionId}] - mobile voting page
	GET /data/                          - diff-viewer JSON documents (when configured)
	GET /                               - admin dashboard assets from the public dir

# Handler Initialization

The router creates handler instances with dependency injection:

	adminHandler := handlers.NewAdminHandler(db, cfg, hub)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	qrHandler := handlers.NewQRHandler(db, cfg)
	wsHandler := handlers.NewWSHandler(hub)
*/
package router
