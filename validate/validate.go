// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/quickpoll/models"
)

// Result is either a typed value or a list of field errors.
type Result[T any] struct {
	Value  T
	Errors []models.FieldError
}

// OK reports whether validation passed
func (r Result[T]) OK() bool {
	return len(r.Errors) == 0
}

// Err returns a *ValidationError, or nil when validation passed
func (r Result[T]) Err() error {
	if r.OK() {
		return nil
	}
	return &ValidationError{Fields: r.Errors}
}

// ValidationError is returned when a request body breaks a shape rule.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// PollInput is a create-poll request that passed validation.
type PollInput struct {
	Title       string
	Description *string
	Options     []string
}

// CreatePoll checks title, description and option constraints.
// Every violation is reported, not just the first.
func CreatePoll(req models.CreatePollRequest) Result[PollInput] {
	var errs []models.FieldError
	add := func(field, msg string) {
		errs = append(errs, models.FieldError{Field: field, Message: msg})
	}

	titleLen := utf8.RuneCountInString(req.Title)
	if titleLen == 0 {
		add("title", "Title is required")
	} else if titleLen > models.MaxTitleLength {
		add("title", fmt.Sprintf("Title must be less than %d characters", models.MaxTitleLength))
	}

	if req.Description != nil && utf8.RuneCountInString(*req.Description) > models.MaxDescriptionLength {
		add("description", fmt.Sprintf("Description must be less than %d characters", models.MaxDescriptionLength))
	}

	for i, text := range req.Options {
		if text == "" {
			add(fmt.Sprintf("options[%d]", i), "Option cannot be empty")
		}
	}

	switch n := len(req.Options); {
	case n < models.MinOptions:
		add("options", fmt.Sprintf("At least %d options are required", models.MinOptions))
	case n > models.MaxOptions:
		add("options", fmt.Sprintf("Maximum %d options allowed", models.MaxOptions))
	}

	if len(errs) > 0 {
		return Result[PollInput]{Errors: errs}
	}

	options := make([]string, len(req.Options))
	copy(options, req.Options)

	return Result[PollInput]{Value: PollInput{
		Title:       req.Title,
		Description: req.Description,
		Options:     options,
	}}
}

// Vote checks that an option id was supplied and returns it.
func Vote(req models.VoteRequest) Result[string] {
	if req.OptionID == "" {
		return Result[string]{Errors: []models.FieldError{
			{Field: "optionId", Message: "Option ID is required"},
		}}
	}
	return Result[string]{Value: req.OptionID}
}
