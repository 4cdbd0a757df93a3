// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed creates polls from a YAML file at startup.

# File Format

	polls:
	  - title: Lang?
	    description: optional
	    options:
	      - JS
	      - {text: Python, votes: 3}

An option is a bare string or a mapping with text and a starting vote
count. Each poll is validated with the same rules as POST /polls before
anything is written.

# Usage

	entries, err := seed.Load(cfg.SeedFile)   // or seed.Embedded for the demo set
	views, err := seed.Apply(ctx, store, entries)

Seed votes go through RecordVote, so vote rows always match the counters.
Polls whose title already exists are skipped, which makes restarting with
the same seed file safe.
*/
package seed
