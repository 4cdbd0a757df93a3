// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/quickpoll/cliparse"
	"github.com/danielhkuo/quickpoll/db"
	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/store"
	"github.com/danielhkuo/quickpoll/validate"
)

// TestDBURL is an in-memory SQLite database, private to each *sql.DB
const TestDBURL = "file::memory:"

// SetupTestDB creates a fresh test database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore returns a store over a fresh test database.
// Each call to the clock is one second after the previous one, so
// creation order is always visible in timestamps.
func SetupTestStore(t *testing.T) (*sql.DB, *store.SQLStore) {
	t.Helper()

	conn := SetupTestDB(t)
	return conn, store.New(conn, store.WithClock(SteppingClock()))
}

// SteppingClock returns a clock that advances one second per call.
// Safe for concurrent use.
func SteppingClock() func() time.Time {
	var mu sync.Mutex
	next := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		next = next.Add(time.Second)
		return next
	}
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   TestDBURL,
		DatabaseType:  db.TypeSQLite,
		VoterHashSalt: "test-voter-salt",
	}
}

// CreateTestPoll creates a poll through the store and returns its view
func CreateTestPoll(t *testing.T, s *store.SQLStore, title string, options ...string) models.PollView {
	t.Helper()

	res := validate.CreatePoll(models.CreatePollRequest{Title: title, Options: options})
	if !res.OK() {
		t.Fatalf("Invalid test poll: %v", res.Err())
	}

	view, err := s.CreatePoll(context.Background(), res.Value)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return view
}

// CastTestVotes records n votes for an option and returns the last view
func CastTestVotes(t *testing.T, s *store.SQLStore, pollID, optionID string, n int) models.PollView {
	t.Helper()

	var view models.PollView
	for i := 0; i < n; i++ {
		var err error
		view, err = s.RecordVote(context.Background(), pollID, optionID, nil)
		if err != nil {
			t.Fatalf("Failed to record test vote: %v", err)
		}
	}

	return view
}

// OptionID returns the id of the option with the given text
func OptionID(t *testing.T, view models.PollView, text string) string {
	t.Helper()

	for _, opt := range view.Options {
		if opt.Text == text {
			return opt.ID
		}
	}
	t.Fatalf("Option %q not found in poll %s", text, view.ID)
	return ""
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
