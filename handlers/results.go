// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickpoll/middleware"
	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/tally"
)

type ResultsHandler struct {
	store PollStore
	now   func() time.Time
}

func NewResultsHandler(store PollStore) *ResultsHandler {
	return &ResultsHandler{store: store, now: time.Now}
}

// GetResults handles GET /polls/{id}/results
// Returns the poll view with per-option percentages computed on the fly
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	view, err := h.store.GetPoll(r.Context(), pollID)
	if err != nil {
		writeStoreError(w, err, "Failed to fetch results", "poll_id", pollID)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollResultsResponse{
		ID:          view.ID,
		Title:       view.Title,
		Description: view.Description,
		Options:     tally.Results(view),
		CreatedAt:   view.CreatedAt,
		CreatedAgo:  humanize.RelTime(view.CreatedAt, h.now(), "ago", "from now"),
		TotalVotes:  view.TotalVotes,
	})
}
