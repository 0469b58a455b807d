// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pollcast/pollcast/models"
	"github.com/pollcast/pollcast/testutil"
	"github.com/pollcast/pollcast/ws"
)

func TestHealthEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig(), ws.NewHub())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body OK, got %q", w.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig(), ws.NewHub())

	req := httptest.NewRequest("POST", "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

// postJSON sends a JSON body to the test server and decodes the reply.
func postJSON(t *testing.T, client *http.Client, method, url string, body, out interface{}) int {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("Failed to decode %s %s response: %v", method, url, err)
		}
	} else {
		io.Copy(io.Discard, resp.Body)
	}
	return resp.StatusCode
}

// Walks a poll through its whole lifecycle over real HTTP: create, list,
// vote from two sessions, close with a live WebSocket subscriber, delete.
func TestPollLifecycle(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	hub := ws.NewHub()
	srv := httptest.NewServer(NewRouter(conn, cfg, hub))
	defer srv.Close()

	client := srv.Client()

	// Create
	var created models.CreatePollResponse
	status := postJSON(t, client, "POST", srv.URL+"/api/admin/polls", models.CreatePollRequest{
		Password: cfg.AdminPassword,
		Title:    "Lunch",
		Questions: []models.QuestionInput{
			{Text: "Where should we eat?", Type: "single", Options: []string{"Tacos", "Ramen"}},
		},
	}, &created)
	if status != http.StatusCreated {
		t.Fatalf("Create returned %d", status)
	}
	pollID := created.PollID

	listPolls := func() []models.Poll {
		var polls []models.Poll
		status := postJSON(t, client, "POST", srv.URL+"/api/admin/polls/list",
			models.AdminRequest{Password: cfg.AdminPassword}, &polls)
		if status != http.StatusOK {
			t.Fatalf("List returned %d", status)
		}
		return polls
	}

	polls := listPolls()
	if len(polls) != 1 || polls[0].Title != "Lunch" || polls[0].ParticipantCount != 0 {
		t.Fatalf("Unexpected list after create: %+v", polls)
	}

	// Fetch the public view to learn option IDs
	resp, err := client.Get(srv.URL + "/api/polls/" + pollID)
	if err != nil {
		t.Fatal(err)
	}
	var pollView models.PollWithQuestions
	if err := json.NewDecoder(resp.Body).Decode(&pollView); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if len(pollView.Questions) != 1 || len(pollView.Questions[0].Options) != 2 {
		t.Fatalf("Unexpected poll view: %+v", pollView)
	}
	tacos := pollView.Questions[0].Options[0].ID
	ramen := pollView.Questions[0].Options[1].ID

	// Subscribe to the poll's room before closing
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/poll/" + pollID
	wsConn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to dial websocket: %v", err)
	}
	defer wsConn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.RoomSize(pollID) == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.RoomSize(pollID) == 0 {
		t.Fatal("Subscriber never registered")
	}

	// Two sessions vote
	status = postJSON(t, client, "POST", srv.URL+"/api/votes", models.SubmitVotesRequest{
		SessionID: "alice",
		Votes:     []models.VoteInput{{OptionID: tacos}},
	}, nil)
	if status != http.StatusOK {
		t.Fatalf("First vote returned %d", status)
	}
	status = postJSON(t, client, "POST", srv.URL+"/api/votes", models.SubmitVotesRequest{
		SessionID: "bella",
		Votes:     []models.VoteInput{{OptionID: ramen}},
	}, nil)
	if status != http.StatusOK {
		t.Fatalf("Second vote returned %d", status)
	}

	polls = listPolls()
	if polls[0].ParticipantCount != 2 {
		t.Errorf("Expected participant_count 2 after two sessions, got %d", polls[0].ParticipantCount)
	}

	// Close: subscriber gets the event, further votes bounce
	status = postJSON(t, client, "PUT", srv.URL+"/api/admin/polls/"+pollID+"/close",
		models.AdminRequest{Password: cfg.AdminPassword}, nil)
	if status != http.StatusOK {
		t.Fatalf("Close returned %d", status)
	}

	wsConn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := wsConn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read close broadcast: %v", err)
	}
	var event ws.Event
	if err := json.Unmarshal(data, &event); err != nil {
		t.Fatal(err)
	}
	if event.Type != "pollClosed" {
		t.Errorf("Event type = %q, want pollClosed", event.Type)
	}

	status = postJSON(t, client, "POST", srv.URL+"/api/votes", models.SubmitVotesRequest{
		SessionID: "late",
		Votes:     []models.VoteInput{{OptionID: tacos}},
	}, nil)
	if status != http.StatusConflict {
		t.Errorf("Vote on closed poll returned %d, want 409", status)
	}

	// Closed polls stay readable so clients can reconcile
	resp, err = client.Get(srv.URL + "/api/polls/" + pollID)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.NewDecoder(resp.Body).Decode(&pollView); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if !pollView.Poll.Closed {
		t.Error("Expected closed flag after close")
	}

	// Delete
	status = postJSON(t, client, "DELETE", srv.URL+"/api/admin/polls/"+pollID,
		models.AdminRequest{Password: cfg.AdminPassword}, nil)
	if status != http.StatusOK {
		t.Fatalf("Delete returned %d", status)
	}

	if polls = listPolls(); len(polls) != 0 {
		t.Errorf("Expected empty list after delete, got %d polls", len(polls))
	}
}

func TestDataDirServed(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	dataDir := t.TempDir()
	cfg := testutil.GetTestConfig()
	cfg.DataDir = dataDir

	writeFile(t, dataDir+"/diff.json", `{"pairs":[]}`)

	mux := NewRouter(conn, cfg, ws.NewHub())

	req := httptest.NewRequest("GET", "/data/diff.json", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != `{"pairs":[]}` {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestDataDirDisabled(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	cfg.DataDir = ""
	cfg.PublicDir = t.TempDir()

	mux := NewRouter(conn, cfg, ws.NewHub())

	req := httptest.NewRequest("GET", "/data/diff.json", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	// Falls through to the static file server, which has no such file
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
