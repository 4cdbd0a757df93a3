// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: title, description (optional), options
  - VoteRequest: optionId

# Domain Types

Rows as stored by the store package:

  - Poll: poll metadata plus its options in insertion order
  - Option: option text and vote counter
  - Vote: append-only record of one counter increment

# View Types

Derived, never persisted:

  - PollView: id, title, description, options, createdAt, totalVotes
  - PollResultsResponse: PollView plus per-option percentage and createdAgo

# Errors

ErrorResponse carries the status text, a human message and, for
validation failures, one FieldError per offending field.

# Limits

	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MinOptions           = 2
	MaxOptions           = 10
*/
package models
