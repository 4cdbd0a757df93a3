// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate checks request bodies before they reach the store.

Validators never fail with a panic or a bare error. They return a Result
holding either the typed value or every field-level problem found:

	res := validate.CreatePoll(req)
	if !res.OK() {
		// res.Errors: []models.FieldError{{Field: "options", Message: "..."}}
	}
	input := res.Value

Result.Err wraps the field errors in a *ValidationError for callers that
prefer the error interface.

# Rules

  - title: required, at most 100 characters
  - description: optional, at most 500 characters
  - options: 2 to 10 entries, none empty
  - optionId: required

Lengths count characters, not bytes.
*/
package validate
