// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the quickpoll API.

# Handler Types

Each handler is a struct around a PollStore. VotingHandler also takes
the config for the voter hash salt:

  - PollHandler: create, list, get and delete polls
  - VotingHandler: vote submission
  - ResultsHandler: poll view with percentages
  - HealthHandler: liveness and database checks

Handlers depend on the PollStore interface, not on a database handle:

	s := store.New(conn)
	pollHandler := handlers.NewPollHandler(s)

# Routes

	POST   /polls               → CreatePoll (201, poll view)
	GET    /polls               → ListPolls (newest first)
	GET    /polls/{id}          → GetPoll
	DELETE /polls/{id}          → DeletePoll (204)
	POST   /polls/{id}/vote     → Vote (200, refreshed view)
	GET    /polls/{id}/results  → GetResults

# Error Mapping

	validation failure      → 400 with details per field
	store.ErrNotFound       → 404
	store.ErrInvalidOption  → 400
	anything else           → 500, logged, generic message

Store failures are never retried.
*/
package handlers
