// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"path/filepath"

	"github.com/pollcast/pollcast/cliparse"
	"github.com/pollcast/pollcast/handlers"
	"github.com/pollcast/pollcast/middleware"
	"github.com/pollcast/pollcast/ws"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, hub *ws.Hub) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(db, cfg, hub)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	qrHandler := handlers.NewQRHandler(db, cfg)
	wsHandler := handlers.NewWSHandler(hub)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Admin operations (password-in-body authentication)
	mux.HandleFunc("POST /api/admin/polls", middleware.WithLogging(adminHandler.CreatePoll))
	mux.HandleFunc("POST /api/admin/polls/list", middleware.WithLogging(adminHandler.ListPolls))
	mux.HandleFunc("PUT /api/admin/polls/{id}/status", middleware.WithLogging(adminHandler.SetStatus))
	mux.HandleFunc("PUT /api/admin/polls/{id}/close", middleware.WithLogging(adminHandler.ClosePoll))
	mux.HandleFunc("DELETE /api/admin/polls/{id}", middleware.WithLogging(adminHandler.DeletePoll))

	// Voting operations (public)
	mux.HandleFunc("GET /api/polls/{id}", middleware.WithLogging(votingHandler.GetPoll))
	mux.HandleFunc("POST /api/votes", middleware.WithLogging(votingHandler.SubmitVotes))

	// QR metadata
	mux.HandleFunc("GET /api/qr/poll/{id}/questions", middleware.WithLogging(qrHandler.Questions))
	mux.HandleFunc("GET /api/qr/poll/{id}/print", middleware.WithLogging(qrHandler.PrintSheet))

	// Real-time channel. Not wrapped with logging: the status recorder
	// does not implement http.Hijacker, which the upgrade needs.
	mux.HandleFunc("GET /ws/poll/{id}", wsHandler.Subscribe)

	// Mobile voting page: one HTML shell for both route shapes; the page
	// reads pollId/questionId from its own location.
	mobile := func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.PublicDir, "mobile.html"))
	}
	mux.HandleFunc("GET /mobile/{pollId}", mobile)
	mux.HandleFunc("GET /mobile/{pollId}/{questionId}", mobile)

	// Diff-viewer data files
	if cfg.DataDir != "" {
		mux.Handle("GET /data/", http.StripPrefix("/data/", http.FileServer(http.Dir(cfg.DataDir))))
	}

	// Admin dashboard and remaining static assets
	mux.Handle("GET /", http.FileServer(http.Dir(cfg.PublicDir)))

	return mux
}
