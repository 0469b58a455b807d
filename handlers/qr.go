// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/base64"
	"html/template"
	"log/slog"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/pollcast/pollcast/cliparse"
	"github.com/pollcast/pollcast/middleware"
	"github.com/pollcast/pollcast/models"
)

type QRHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewQRHandler(db *sql.DB, cfg cliparse.Config) *QRHandler {
	return &QRHandler{db: db, cfg: cfg}
}

// Questions handles GET /api/qr/poll/{id}/questions
//
// One entry per question: the question text, the mobile voting URL, and
// that URL encoded as a base64 PNG data URI.
func (h *QRHandler) Questions(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	entries, _, err := h.buildEntries(pollID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to build QR entries", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate QR codes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}

// PrintSheet handles GET /api/qr/poll/{id}/print
//
// Renders an HTML sheet of all QR codes for the poll, one block per
// question, suitable for printing and posting in the room.
func (h *QRHandler) PrintSheet(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	entries, title, err := h.buildEntries(pollID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to build QR entries", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate QR codes")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := printTemplate.Execute(w, printData{Title: title, Entries: entries}); err != nil {
		slog.Error("failed to render print sheet", "error", err, "poll_id", pollID)
	}
}

// buildEntries loads the poll's questions and encodes a QR code per
// question. Returns sql.ErrNoRows when the poll does not exist.
func (h *QRHandler) buildEntries(pollID string) ([]models.QRCodeEntry, string, error) {
	var title string
	err := h.db.QueryRow(`SELECT title FROM polls WHERE id = $1`, pollID).Scan(&title)
	if err != nil {
		return nil, "", err
	}

	rows, err := h.db.Query(`
		SELECT id, question_text
		FROM questions
		WHERE poll_id = $1
		ORDER BY order_index
	`, pollID)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	entries := []models.QRCodeEntry{}
	for rows.Next() {
		var questionID, questionText string
		if err := rows.Scan(&questionID, &questionText); err != nil {
			return nil, "", err
		}

		url := h.cfg.BaseURL + "/mobile/" + pollID + "/" + questionID
		png, err := qrcode.Encode(url, qrcode.Medium, 256)
		if err != nil {
			return nil, "", err
		}

		entries = append(entries, models.QRCodeEntry{
			QuestionText: questionText,
			QRCode:       "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
			URL:          url,
		})
	}
	return entries, title, rows.Err()
}

type printData struct {
	Title   string
	Entries []models.QRCodeEntry
}

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}} - QR Codes</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
.code { page-break-inside: avoid; text-align: center; margin-bottom: 3rem; }
.code img { width: 256px; height: 256px; }
.code h2 { margin-bottom: 0.5rem; }
.code p { color: #555; font-size: 0.9rem; word-break: break-all; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Entries}}
<div class="code">
<h2>{{.QuestionText}}</h2>
<img src="{{.QRCode}}" alt="QR code">
<p>{{.URL}}</p>
</div>
{{end}}
</body>
</html>
`))
