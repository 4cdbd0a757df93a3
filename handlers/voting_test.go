// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/testutil"
)

func voteRequest(pollID, optionID string) *http.Request {
	req := testutil.MakeRequest("POST", "/polls/"+pollID+"/vote", models.VoteRequest{OptionID: optionID}, map[string]string{
		"User-Agent": "quickpoll-test/1.0",
	})
	req.SetPathValue("id", pollID)
	return req
}

func TestVote(t *testing.T) {
	conn, s := testutil.SetupTestStore(t)
	handler := NewVotingHandler(s, testutil.GetTestConfig())

	poll := testutil.CreateTestPoll(t, s, "Lang?", "JS", "Python")
	other := testutil.CreateTestPoll(t, s, "Other", "X", "Y")
	jsID := testutil.OptionID(t, poll, "JS")

	tests := []struct {
		name           string
		pollID         string
		optionID       string
		expectedStatus int
		expectedJS     int
		expectedTotal  int
	}{
		{"first vote", poll.ID, jsID, http.StatusOK, 1, 1},
		{"second vote from same client", poll.ID, jsID, http.StatusOK, 2, 2},
		{"option from another poll", poll.ID, other.Options[0].ID, http.StatusBadRequest, 2, 2},
		{"unknown option", poll.ID, "nope", http.StatusBadRequest, 2, 2},
		{"unknown poll", "missing", jsID, http.StatusNotFound, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Vote(w, voteRequest(tt.pollID, tt.optionID))

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var view models.PollView
				testutil.AssertJSON(t, w, &view)
				if view.Options[0].Votes != tt.expectedJS {
					t.Errorf("Expected JS votes %d, got %d", tt.expectedJS, view.Options[0].Votes)
				}
				if view.Options[1].Votes != 0 {
					t.Errorf("Expected Python votes 0, got %d", view.Options[1].Votes)
				}
				if view.TotalVotes != tt.expectedTotal {
					t.Errorf("Expected totalVotes %d, got %d", tt.expectedTotal, view.TotalVotes)
				}
			}

			// A rejected vote must not touch either poll
			stored, err := s.GetPoll(t.Context(), poll.ID)
			if err != nil {
				t.Fatalf("Failed to load poll: %v", err)
			}
			if stored.TotalVotes != tt.expectedTotal {
				t.Errorf("Expected stored totalVotes %d, got %d", tt.expectedTotal, stored.TotalVotes)
			}
		})
	}

	t.Run("other poll untouched", func(t *testing.T) {
		stored, err := s.GetPoll(t.Context(), other.ID)
		if err != nil {
			t.Fatalf("Failed to load poll: %v", err)
		}
		if stored.TotalVotes != 0 {
			t.Errorf("Expected 0 votes on other poll, got %d", stored.TotalVotes)
		}
	})

	t.Run("vote rows match counters", func(t *testing.T) {
		var count int
		if err := conn.QueryRow("SELECT COUNT(*) FROM votes WHERE poll_id = $1", poll.ID).Scan(&count); err != nil {
			t.Fatalf("Failed to count votes: %v", err)
		}
		if count != 2 {
			t.Errorf("Expected 2 vote rows, got %d", count)
		}
	})

	t.Run("voter hash recorded", func(t *testing.T) {
		var hash sql.NullString
		err := conn.QueryRow("SELECT voter_hash FROM votes WHERE poll_id = $1 LIMIT 1", poll.ID).Scan(&hash)
		if err != nil {
			t.Fatalf("Failed to read vote: %v", err)
		}
		if !hash.Valid || len(hash.String) != 16 {
			t.Errorf("Expected 16 character voter hash, got %+v", hash)
		}
	})
}

func TestVote_BadRequests(t *testing.T) {
	_, s := testutil.SetupTestStore(t)
	handler := NewVotingHandler(s, testutil.GetTestConfig())

	poll := testutil.CreateTestPoll(t, s, "Lang?", "JS", "Python")

	tests := []struct {
		name string
		body []byte
	}{
		{"missing optionId", []byte(`{}`)},
		{"empty optionId", []byte(`{"optionId": ""}`)},
		{"invalid JSON", []byte(`not json`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/polls/"+poll.ID+"/vote", bytes.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("id", poll.ID)
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}

	stored, err := s.GetPoll(t.Context(), poll.ID)
	if err != nil {
		t.Fatalf("Failed to load poll: %v", err)
	}
	if stored.TotalVotes != 0 {
		t.Errorf("Expected no votes recorded, got %d", stored.TotalVotes)
	}
}

func TestVote_WithoutSalt(t *testing.T) {
	conn, s := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	cfg.VoterHashSalt = ""
	handler := NewVotingHandler(s, cfg)

	poll := testutil.CreateTestPoll(t, s, "Lang?", "JS", "Python")

	w := httptest.NewRecorder()
	handler.Vote(w, voteRequest(poll.ID, poll.Options[1].ID))

	testutil.AssertStatus(t, w, http.StatusOK)

	var hash sql.NullString
	if err := conn.QueryRow("SELECT voter_hash FROM votes LIMIT 1").Scan(&hash); err != nil {
		t.Fatalf("Failed to read vote: %v", err)
	}
	if hash.Valid {
		t.Errorf("Expected NULL voter hash, got %q", hash.String)
	}
}

func TestVote_StoreFailure(t *testing.T) {
	handler := NewVotingHandler(failingStore{}, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.Vote(w, voteRequest("p", "o"))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
