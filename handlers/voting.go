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
)

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg}
}

// GetPoll handles GET /api/polls/{id}
//
// Public view for the voting page: the poll with its questions and
// options in display order. Inactive polls are hidden from this
// endpoint; closed polls stay visible so reconnecting clients can see
// the closed flag.
func (h *VotingHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	var poll models.Poll
	err := h.db.QueryRow(`
		SELECT id, title, description, active, closed, created_at, updated_at, closed_at
		FROM polls
		WHERE id = $1
	`, pollID).Scan(&poll.ID, &poll.Title, &poll.Description, &poll.Active,
		&poll.Closed, &poll.CreatedAt, &poll.UpdatedAt, &poll.ClosedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if !poll.Active {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	questions, err := h.loadQuestions(pollID)
	if err != nil {
		slog.Error("failed to load questions", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollWithQuestions{
		Poll:      poll,
		Questions: questions,
	})
}

func (h *VotingHandler) loadQuestions(pollID string) ([]models.Question, error) {
	rows, err := h.db.Query(`
		SELECT id, poll_id, question_text, question_type, order_index
		FROM questions
		WHERE poll_id = $1
		ORDER BY order_index
	`, pollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []models.Question{}
	index := map[string]int{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.PollID, &q.Text, &q.Type, &q.OrderIndex); err != nil {
			return nil, err
		}
		q.Options = []models.Option{}
		index[q.ID] = len(questions)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	optRows, err := h.db.Query(`
		SELECT o.id, o.question_id, o.option_text, o.order_index
		FROM options o
		JOIN questions q ON o.question_id = q.id
		WHERE q.poll_id = $1
		ORDER BY o.question_id, o.order_index
	`, pollID)
	if err != nil {
		return nil, err
	}
	defer optRows.Close()

	for optRows.Next() {
		var o models.Option
		if err := optRows.Scan(&o.ID, &o.QuestionID, &o.Text, &o.OrderIndex); err != nil {
			return nil, err
		}
		if i, ok := index[o.QuestionID]; ok {
			questions[i].Options = append(questions[i].Options, o)
		}
	}
	return questions, optRows.Err()
}

// SubmitVotes handles POST /api/votes
//
// Records one vote row per chosen option under a session ID, generating
// one when the client has none yet. Sessions may vote repeatedly; the
// participant count deduplicates by session, not by vote.
func (h *VotingHandler) SubmitVotes(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVotesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Votes) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "votes cannot be empty")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = auth.GenerateSessionID()
	}

	// Resolve the poll behind the first option and check its state once;
	// remaining options must belong to the same poll.
	var pollID string
	var active, closed bool
	err := h.db.QueryRow(`
		SELECT p.id, p.active, p.closed
		FROM polls p
		JOIN questions q ON q.poll_id = p.id
		JOIN options o ON o.question_id = q.id
		WHERE o.id = $1
	`, req.Votes[0].OptionID).Scan(&pollID, &active, &closed)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Option not found")
		return
	}
	if err != nil {
		slog.Error("failed to resolve option", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if closed {
		middleware.ErrorResponse(w, http.StatusConflict, "Poll is closed")
		return
	}
	if !active {
		middleware.ErrorResponse(w, http.StatusConflict, "Poll is not active")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	now := time.Now()
	for _, v := range req.Votes {
		var optionPollID string
		err := tx.QueryRow(`
			SELECT q.poll_id
			FROM options o
			JOIN questions q ON o.question_id = q.id
			WHERE o.id = $1
		`, v.OptionID).Scan(&optionPollID)

		if err == sql.ErrNoRows {
			middleware.ErrorResponse(w, http.StatusNotFound, "Option not found")
			return
		}
		if err != nil {
			slog.Error("failed to resolve option", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if optionPollID != pollID {
			middleware.ErrorResponse(w, http.StatusBadRequest, "options must belong to one poll")
			return
		}

		voteID, err := auth.GenerateID(16)
		if err != nil {
			slog.Error("failed to generate vote ID", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record votes")
			return
		}

		_, err = tx.Exec(`
			INSERT INTO votes (id, option_id, session_id, voted_at)
			VALUES ($1, $2, $3, $4)
		`, voteID, v.OptionID, sessionID, now)
		if err != nil {
			slog.Error("failed to insert vote", "error", err, "option_id", v.OptionID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record votes")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record votes")
		return
	}

	slog.Info("votes recorded", "poll_id", pollID, "session_id", sessionID, "count", len(req.Votes))

	middleware.JSONResponse(w, http.StatusOK, models.SubmitVotesResponse{
		Success:   true,
		SessionID: sessionID,
	})
}
