// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickpoll/auth"
	"github.com/danielhkuo/quickpoll/cliparse"
	"github.com/danielhkuo/quickpoll/metrics"
	"github.com/danielhkuo/quickpoll/middleware"
	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/store"
	"github.com/danielhkuo/quickpoll/validate"
)

type VotingHandler struct {
	store PollStore
	cfg   cliparse.Config
}

func NewVotingHandler(store PollStore, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{store: store, cfg: cfg}
}

// Vote handles POST /polls/{id}/vote
// Repeat votes from the same client are accepted
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	// Parse request
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	res := validate.Vote(req)
	if !res.OK() {
		middleware.ValidationErrorResponse(w, res.Errors)
		return
	}
	optionID := res.Value

	// Fingerprint is informational; a vote without one is still recorded
	var voterHash *string
	hash, err := auth.HashVoter(middleware.GetClientIP(r), r.UserAgent(), h.cfg.VoterHashSalt)
	if err != nil {
		slog.Warn("failed to hash voter", "error", err)
	} else {
		voterHash = &hash
	}

	view, err := h.store.RecordVote(r.Context(), pollID, optionID, voterHash)
	if err != nil {
		metrics.Votes.WithLabelValues(voteOutcome(err)).Inc()
		writeStoreError(w, err, "Failed to record vote", "poll_id", pollID, "option_id", optionID)
		return
	}

	metrics.Votes.WithLabelValues("recorded").Inc()
	slog.Info("vote recorded", "poll_id", pollID, "option_id", optionID, "total_votes", view.TotalVotes)

	middleware.JSONResponse(w, http.StatusOK, view)
}

func voteOutcome(err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "not_found"
	case errors.Is(err, store.ErrInvalidOption):
		return "invalid_option"
	default:
		return "error"
	}
}
