// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quickpoll API server.

quickpoll is a simple polling service: create a poll with 2 to 10 options,
vote, and read the running totals and percentages.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:quickpoll.db VOTER_HASH_SALT=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -voter-salt ...

Variables can also live in a .env file next to the binary.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite or PostgreSQL connection string
  - VOTER_HASH_SALT (-voter-salt): Secret for voter fingerprints

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - SEED_FILE (-seed): YAML polls to create at startup, or "embedded"

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (polls, voting, results, health)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - store: Poll persistence and vote validation
  - tally: Poll views and percentages
  - validate: Request shape rules
  - models: Request/response types
  - metrics: Prometheus counters
  - seed: YAML poll fixtures
  - auth: Voter fingerprints
  - db: Connections and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
