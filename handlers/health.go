// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickpoll/middleware"
	"github.com/danielhkuo/quickpoll/models"
)

type HealthHandler struct {
	store PollStore
}

func NewHealthHandler(store PollStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Live handles GET /health
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// Database handles GET /health/db
// Confirms the database answers a query against the polls table
func (h *HealthHandler) Database(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		slog.Error("database health check failed", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.HealthResponse{
			Status:  "error",
			Message: "Database connection failed",
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:  "success",
		Message: "Database connection successful",
	})
}
