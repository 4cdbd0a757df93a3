// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: PostgreSQL or SQLite connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - VoterHashSalt: Secret for voter fingerprints (required)
  - SeedFile: YAML polls to create at startup (optional)
  - EnvFile: dotenv file to read before env lookup (default: .env)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-voter-salt   Voter fingerprint salt
	-seed         Seed file, or "embedded"
	-env-file     Dotenv file ("" disables)

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	VOTER_HASH_SALT → -voter-salt
	SEED_FILE       → -seed

CLI flags take precedence over environment variables, and variables already
set in the environment take precedence over the dotenv file. A missing
dotenv file is not an error.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - VOTER_HASH_SALT must be provided
  - DATABASE_TYPE must be sqlite or postgres
*/
package cliparse
