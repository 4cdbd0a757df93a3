// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and creates the schema.

# Connections

Open selects the driver by database type:

	conn, err := db.Open(db.TypePostgres, "postgres://...")
	conn, err := db.Open(db.TypeSQLite, "file:quickpoll.db")

PostgreSQL uses github.com/lib/pq. SQLite uses modernc.org/sqlite with
foreign keys switched on, so cascading deletes behave the same on both.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - polls: title, optional description, timestamps
  - poll_options: option text, insertion position, vote counter
  - votes: one row per recorded vote

# Relationships

	polls 1──* poll_options
	polls 1──* votes
	poll_options 1──* votes

All foreign keys use ON DELETE CASCADE.
*/
package db
