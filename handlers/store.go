// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickpoll/middleware"
	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/store"
	"github.com/danielhkuo/quickpoll/validate"
)

// PollStore is the persistence the handlers depend on.
// *store.SQLStore satisfies it.
type PollStore interface {
	CreatePoll(ctx context.Context, input validate.PollInput) (models.PollView, error)
	GetPoll(ctx context.Context, id string) (models.PollView, error)
	ListPolls(ctx context.Context) ([]models.PollView, error)
	DeletePoll(ctx context.Context, id string) error
	RecordVote(ctx context.Context, pollID, optionID string, voterHash *string) (models.PollView, error)
	Ping(ctx context.Context) error
}

var _ PollStore = (*store.SQLStore)(nil)

// writeStoreError maps store errors to responses. Unknown errors are logged
// and answered with a generic 500 so backend details never reach clients.
func writeStoreError(w http.ResponseWriter, err error, failMessage string, attrs ...any) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	case errors.Is(err, store.ErrInvalidOption):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid option for this poll")
	default:
		slog.Error(failMessage, append(attrs, "error", err)...)
		middleware.ErrorResponse(w, http.StatusInternalServerError, failMessage)
	}
}
