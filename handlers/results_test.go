// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/testutil"
)

func TestGetResults(t *testing.T) {
	_, s := testutil.SetupTestStore(t)
	handler := NewResultsHandler(s)

	poll := testutil.CreateTestPoll(t, s, "Lang?", "JS", "Python", "Go")
	empty := testutil.CreateTestPoll(t, s, "Quiet", "A", "B")

	testutil.CastTestVotes(t, s, poll.ID, testutil.OptionID(t, poll, "JS"), 1)
	testutil.CastTestVotes(t, s, poll.ID, testutil.OptionID(t, poll, "Python"), 2)

	// Pin the clock two hours after creation
	handler.now = func() time.Time { return poll.CreatedAt.Add(2 * time.Hour) }

	tests := []struct {
		name           string
		pollID         string
		expectedStatus int
		expectedPct    []int
		expectedTotal  int
	}{
		{"mixed votes", poll.ID, http.StatusOK, []int{33, 67, 0}, 3},
		{"no votes", empty.ID, http.StatusOK, []int{0, 0}, 0},
		{"not found", "missing", http.StatusNotFound, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/polls/"+tt.pollID+"/results", nil)
			req.SetPathValue("id", tt.pollID)
			w := httptest.NewRecorder()

			handler.GetResults(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.PollResultsResponse
			testutil.AssertJSON(t, w, &resp)

			if resp.TotalVotes != tt.expectedTotal {
				t.Errorf("Expected totalVotes %d, got %d", tt.expectedTotal, resp.TotalVotes)
			}
			if len(resp.Options) != len(tt.expectedPct) {
				t.Fatalf("Expected %d options, got %d", len(tt.expectedPct), len(resp.Options))
			}
			for i, pct := range tt.expectedPct {
				if resp.Options[i].Percentage != pct {
					t.Errorf("Option %s: expected %d%%, got %d%%", resp.Options[i].Text, pct, resp.Options[i].Percentage)
				}
			}
		})
	}

	t.Run("created ago", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/polls/"+poll.ID+"/results", nil)
		req.SetPathValue("id", poll.ID)
		w := httptest.NewRecorder()

		handler.GetResults(w, req)

		var resp models.PollResultsResponse
		testutil.AssertJSON(t, w, &resp)

		if resp.CreatedAgo != "2 hours ago" {
			t.Errorf("Expected '2 hours ago', got '%s'", resp.CreatedAgo)
		}
	})
}

func TestGetResults_StoreFailure(t *testing.T) {
	handler := NewResultsHandler(failingStore{})

	req := httptest.NewRequest("GET", "/polls/x/results", nil)
	req.SetPathValue("id", "x")
	w := httptest.NewRecorder()

	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
