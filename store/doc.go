// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists polls, options and votes.

SQLStore is built from an explicit *sql.DB handle, so tests can hand it an
in-memory SQLite database:

	s := store.New(conn)
	view, err := s.CreatePoll(ctx, input)

# Operations

  - CreatePoll: poll and options in one transaction
  - GetPoll: poll view, or ErrNotFound
  - ListPolls: all poll views, newest first
  - DeletePoll: removes the poll, cascading to options and votes
  - RecordVote: ValidateVote, then counter increment and vote row in one
    transaction; returns the refreshed view

# Errors

ErrNotFound and ErrInvalidOption are distinct so HTTP callers can answer
404 and 400 respectively. Everything else is a wrapped database error.

# Counters

Vote counters only change through

	UPDATE poll_options SET votes = votes + 1 WHERE id = $1 AND poll_id = $2

There is no read-modify-write in Go and no retry on failure.
*/
package store
