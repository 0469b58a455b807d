// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/pollcast/pollcast/auth"
	"github.com/pollcast/pollcast/cliparse"
	"github.com/pollcast/pollcast/middleware"
	"github.com/pollcast/pollcast/models"
	"github.com/pollcast/pollcast/ws"
)

type AdminHandler struct {
	db   *sql.DB
	cfg  cliparse.Config
	auth *auth.Validator
	hub  *ws.Hub
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config, hub *ws.Hub) *AdminHandler {
	return &AdminHandler{
		db:   db,
		cfg:  cfg,
		auth: auth.NewValidator(cfg.AdminPassword),
		hub:  hub,
	}
}

// CreatePoll handles POST /api/admin/polls
//
// The poll, its questions, and their options are written in one
// transaction: either every row lands or none do.
func (h *AdminHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.auth.Check(req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// Validate input
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if len(req.Questions) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "at least one question is required")
		return
	}
	for _, q := range req.Questions {
		if q.Text == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "question text is required")
			return
		}
		if len(q.Options) < 2 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "each question needs at least 2 options")
			return
		}
		switch q.Type {
		case "", models.QuestionTypeSingle, models.QuestionTypeMultiple:
		default:
			middleware.ErrorResponse(w, http.StatusBadRequest, "question type must be single or multiple")
			return
		}
	}

	pollID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate poll ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	now := time.Now()

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO polls (id, title, description, active, closed, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, FALSE, $4, $5)
	`, pollID, req.Title, req.Description, now, now)
	if err != nil {
		slog.Error("failed to insert poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	for i, q := range req.Questions {
		questionID, err := auth.GenerateID(12)
		if err != nil {
			slog.Error("failed to generate question ID", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
			return
		}

		qType := q.Type
		if qType == "" {
			qType = models.QuestionTypeSingle
		}

		_, err = tx.Exec(`
			INSERT INTO questions (id, poll_id, question_text, question_type, order_index)
			VALUES ($1, $2, $3, $4, $5)
		`, questionID, pollID, q.Text, qType, i)
		if err != nil {
			slog.Error("failed to insert question", "error", err, "poll_id", pollID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
			return
		}

		for j, optionText := range q.Options {
			optionID, err := auth.GenerateID(12)
			if err != nil {
				slog.Error("failed to generate option ID", "error", err)
				middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
				return
			}

			_, err = tx.Exec(`
				INSERT INTO options (id, question_id, option_text, order_index)
				VALUES ($1, $2, $3, $4)
			`, optionID, questionID, optionText, j)
			if err != nil {
				slog.Error("failed to insert option", "error", err, "question_id", questionID)
				middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
				return
			}
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit poll creation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", pollID, "questions", len(req.Questions))

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		Success: true,
		PollID:  pollID,
	})
}

// ListPolls handles POST /api/admin/polls/list
//
// Returns every poll regardless of status, newest first, each annotated
// with participant_count = distinct voting sessions across the poll.
// One grouped query; no per-poll aggregates.
func (h *AdminHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	var req models.AdminRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.auth.Check(req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rows, err := h.db.Query(`
		SELECT p.id, p.title, p.description, p.active, p.closed,
		       p.created_at, p.updated_at, p.closed_at,
		       COUNT(DISTINCT v.session_id) AS participant_count
		FROM polls p
		LEFT JOIN questions q ON q.poll_id = p.id
		LEFT JOIN options o ON o.question_id = q.id
		LEFT JOIN votes v ON v.option_id = o.id
		GROUP BY p.id, p.title, p.description, p.active, p.closed,
		         p.created_at, p.updated_at, p.closed_at
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		slog.Error("failed to query polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Active, &p.Closed,
			&p.CreatedAt, &p.UpdatedAt, &p.ClosedAt, &p.ParticipantCount); err != nil {
			slog.Error("failed to scan poll", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}

// SetStatus handles PUT /api/admin/polls/{id}/status
//
// Toggles the active flag. Deliberately unconditional: a closed poll can
// still be deactivated or reactivated, matching the lifecycle the admin
// UI exposes.
func (h *AdminHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	var req models.SetStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.auth.Check(req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	res, err := h.db.Exec(`
		UPDATE polls SET active = $1, updated_at = $2 WHERE id = $3
	`, req.Active, time.Now(), pollID)
	if err != nil {
		slog.Error("failed to update poll status", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update poll")
		return
	}

	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	slog.Info("poll status updated", "poll_id", pollID, "active", req.Active)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// ClosePoll handles PUT /api/admin/polls/{id}/close
//
// One-way: sets closed, stamps closed_at, and broadcasts pollClosed to
// the poll's room. Closing an already-closed poll succeeds and
// broadcasts again; the stored effect is idempotent, the side effect is
// not.
func (h *AdminHandler) ClosePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	var req models.AdminRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.auth.Check(req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	closedAt := time.Now()
	res, err := h.db.Exec(`
		UPDATE polls SET closed = TRUE, closed_at = $1, updated_at = $2 WHERE id = $3
	`, closedAt, closedAt, pollID)
	if err != nil {
		slog.Error("failed to close poll", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to close poll")
		return
	}

	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	h.hub.Broadcast(pollID, ws.PollClosed(pollID))

	slog.Info("poll closed", "poll_id", pollID, "subscribers", h.hub.RoomSize(pollID))

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// DeletePoll handles DELETE /api/admin/polls/{id}
//
// Permitted in any lifecycle state; questions, options, and votes go
// with the poll via cascade. No soft delete.
func (h *AdminHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	var req models.AdminRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.auth.Check(req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	res, err := h.db.Exec(`DELETE FROM polls WHERE id = $1`, pollID)
	if err != nil {
		slog.Error("failed to delete poll", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete poll")
		return
	}

	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	slog.Info("poll deleted", "poll_id", pollID)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
