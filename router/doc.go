// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the quickpoll API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store.New(conn), cfg)

# Endpoints

Health and metrics:

	GET /health     - Liveness
	GET /health/db  - Database connectivity
	GET /metrics    - Prometheus metrics

Polls:

	POST   /polls              - Create poll with 2-10 options
	GET    /polls              - List polls, newest first
	GET    /polls/{id}         - Poll view
	DELETE /polls/{id}         - Delete poll, options and votes

Voting and results:

	POST /polls/{id}/vote      - Vote for one option
	GET  /polls/{id}/results   - Poll view with percentages

All poll routes are wrapped with middleware.WithLogging.
*/
package router
