// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pollcast/pollcast/auth"
	"github.com/pollcast/pollcast/cliparse"
	"github.com/pollcast/pollcast/db"
)

// SetupTestDB creates a private in-memory sqlite database with the full
// schema. MaxOpenConns is pinned to 1 so the pool never opens a second
// connection, which for an unshared in-memory DSN would be a different,
// empty database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3000,
		DatabaseURL:   "file::memory:",
		DatabaseType:  "sqlite",
		AdminPassword: "test-admin-password",
		PublicDir:     "./public",
		BaseURL:       "http://localhost:3000",
	}
}

// CreateTestPoll inserts a poll and returns its ID
func CreateTestPoll(t *testing.T, conn *sql.DB, title string, active, closed bool) string {
	t.Helper()

	pollID, _ := auth.GenerateID(16)
	now := time.Now()

	var closedAt *time.Time
	if closed {
		closedAt = &now
	}

	_, err := conn.Exec(`
		INSERT INTO polls (id, title, description, active, closed, created_at, updated_at, closed_at)
		VALUES ($1, $2, 'A test poll', $3, $4, $5, $6, $7)
	`, pollID, title, active, closed, now, now, closedAt)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return pollID
}

// AddTestQuestion inserts a question and returns its ID
func AddTestQuestion(t *testing.T, conn *sql.DB, pollID, text, questionType string, orderIndex int) string {
	t.Helper()

	questionID, _ := auth.GenerateID(12)
	_, err := conn.Exec(`
		INSERT INTO questions (id, poll_id, question_text, question_type, order_index)
		VALUES ($1, $2, $3, $4, $5)
	`, questionID, pollID, text, questionType, orderIndex)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return questionID
}

// AddTestOption inserts an option and returns its ID
func AddTestOption(t *testing.T, conn *sql.DB, questionID, text string, orderIndex int) string {
	t.Helper()

	optionID, _ := auth.GenerateID(12)
	_, err := conn.Exec(`
		INSERT INTO options (id, question_id, option_text, order_index)
		VALUES ($1, $2, $3, $4)
	`, optionID, questionID, text, orderIndex)
	if err != nil {
		t.Fatalf("Failed to create test option: %v", err)
	}

	return optionID
}

// AddTestVote inserts a vote for a session
func AddTestVote(t *testing.T, conn *sql.DB, optionID, sessionID string) {
	t.Helper()

	voteID, _ := auth.GenerateID(16)
	_, err := conn.Exec(`
		INSERT INTO votes (id, option_id, session_id, voted_at)
		VALUES ($1, $2, $3, $4)
	`, voteID, optionID, sessionID, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
