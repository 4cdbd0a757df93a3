// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickpoll/metrics"
	"github.com/danielhkuo/quickpoll/middleware"
	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/validate"
)

type PollHandler struct {
	store PollStore
}

func NewPollHandler(store PollStore) *PollHandler {
	return &PollHandler{store: store}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	res := validate.CreatePoll(req)
	if !res.OK() {
		middleware.ValidationErrorResponse(w, res.Errors)
		return
	}

	view, err := h.store.CreatePoll(r.Context(), res.Value)
	if err != nil {
		writeStoreError(w, err, "Failed to create poll")
		return
	}

	metrics.PollsCreated.Inc()
	slog.Info("poll created", "poll_id", view.ID, "options", len(view.Options))

	middleware.JSONResponse(w, http.StatusCreated, view)
}

// ListPolls handles GET /polls
// Returns every poll, newest first
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	views, err := h.store.ListPolls(r.Context())
	if err != nil {
		writeStoreError(w, err, "Failed to fetch polls")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

// GetPoll handles GET /polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	view, err := h.store.GetPoll(r.Context(), pollID)
	if err != nil {
		writeStoreError(w, err, "Failed to fetch poll", "poll_id", pollID)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, view)
}

// DeletePoll handles DELETE /polls/{id}
// Options and votes are removed with the poll
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	if err := h.store.DeletePoll(r.Context(), pollID); err != nil {
		writeStoreError(w, err, "Failed to delete poll", "poll_id", pollID)
		return
	}

	metrics.PollsDeleted.Inc()
	slog.Info("poll deleted", "poll_id", pollID)

	w.WriteHeader(http.StatusNoContent)
}
