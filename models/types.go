// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Question type constants
const (
	QuestionTypeSingle   = "single"
	QuestionTypeMultiple = "multiple"
)

// Request types

// AdminRequest is the body shared by admin endpoints that carry nothing
// but the credential (list, close, delete).
type AdminRequest struct {
	Password string `json:"password"`
}

type QuestionInput struct {
	Text    string   `json:"text"`
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

type CreatePollRequest struct {
	Password    string          `json:"password"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Questions   []QuestionInput `json:"questions"`
}

type SetStatusRequest struct {
	Password string `json:"password"`
	Active   bool   `json:"active"`
}

type VoteInput struct {
	OptionID string `json:"optionId"`
}

type SubmitVotesRequest struct {
	SessionID string      `json:"sessionId"`
	Votes     []VoteInput `json:"votes"`
}

// Response types

type CreatePollResponse struct {
	Success bool   `json:"success"`
	PollID  string `json:"pollId"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type SubmitVotesResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId"`
}

// Domain types

type Poll struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Active           bool       `json:"active"`
	Closed           bool       `json:"closed"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	ClosedAt         *time.Time `json:"closed_at,omitempty"`
	ParticipantCount int        `json:"participant_count"`
}

type Option struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	Text       string `json:"text"`
	OrderIndex int    `json:"order_index"`
}

type Question struct {
	ID         string   `json:"id"`
	PollID     string   `json:"poll_id"`
	Text       string   `json:"text"`
	Type       string   `json:"type"`
	OrderIndex int      `json:"order_index"`
	Options    []Option `json:"options"`
}

type PollWithQuestions struct {
	Poll      Poll       `json:"poll"`
	Questions []Question `json:"questions"`
}

// QRCodeEntry is one printable code pointing a phone at the mobile
// voting page for a single question.
type QRCodeEntry struct {
	QuestionText string `json:"questionText"`
	QRCode       string `json:"qrCode"`
	URL          string `json:"url"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
