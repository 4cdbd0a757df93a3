// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickpoll/models"
)

func strPtr(s string) *string { return &s }

func TestCreatePoll(t *testing.T) {
	tests := []struct {
		name       string
		req        models.CreatePollRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  models.CreatePollRequest{Title: "Lang?", Options: []string{"JS", "Python"}},
		},
		{
			name: "valid with description and ten options",
			req: models.CreatePollRequest{
				Title:       strings.Repeat("t", 100),
				Description: strPtr(strings.Repeat("d", 500)),
				Options:     []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"},
			},
		},
		{
			name:       "missing title",
			req:        models.CreatePollRequest{Options: []string{"A", "B"}},
			wantFields: []string{"title"},
		},
		{
			name:       "title too long",
			req:        models.CreatePollRequest{Title: strings.Repeat("t", 101), Options: []string{"A", "B"}},
			wantFields: []string{"title"},
		},
		{
			name:       "description too long",
			req:        models.CreatePollRequest{Title: "T", Description: strPtr(strings.Repeat("d", 501)), Options: []string{"A", "B"}},
			wantFields: []string{"description"},
		},
		{
			name:       "one option",
			req:        models.CreatePollRequest{Title: "T", Options: []string{"A"}},
			wantFields: []string{"options"},
		},
		{
			name:       "no options",
			req:        models.CreatePollRequest{Title: "T"},
			wantFields: []string{"options"},
		},
		{
			name:       "eleven options",
			req:        models.CreatePollRequest{Title: "T", Options: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}},
			wantFields: []string{"options"},
		},
		{
			name:       "empty option",
			req:        models.CreatePollRequest{Title: "T", Options: []string{"A", "", "C"}},
			wantFields: []string{"options[1]"},
		},
		{
			name:       "everything wrong",
			req:        models.CreatePollRequest{Description: strPtr(strings.Repeat("d", 501)), Options: []string{""}},
			wantFields: []string{"title", "description", "options[0]", "options"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CreatePoll(tt.req)

			if len(tt.wantFields) == 0 {
				require.True(t, res.OK(), "unexpected errors: %v", res.Errors)
				assert.NoError(t, res.Err())
				assert.Equal(t, tt.req.Title, res.Value.Title)
				assert.Equal(t, tt.req.Options, res.Value.Options)
				return
			}

			require.False(t, res.OK())
			fields := make([]string, 0, len(res.Errors))
			for _, e := range res.Errors {
				fields = append(fields, e.Field)
				assert.NotEmpty(t, e.Message)
			}
			assert.Equal(t, tt.wantFields, fields)
			assert.Zero(t, res.Value)
		})
	}
}

func TestCreatePoll_Messages(t *testing.T) {
	res := CreatePoll(models.CreatePollRequest{Title: "T", Options: []string{"A"}})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "At least 2 options are required", res.Errors[0].Message)

	res = CreatePoll(models.CreatePollRequest{Title: "T", Options: make([]string, 11)})
	assert.Contains(t, res.Errors, models.FieldError{Field: "options", Message: "Maximum 10 options allowed"})

	res = CreatePoll(models.CreatePollRequest{Options: []string{"A", "B"}})
	assert.Equal(t, []models.FieldError{{Field: "title", Message: "Title is required"}}, res.Errors)
}

func TestCreatePoll_CountsCharacters(t *testing.T) {
	// 100 multi-byte characters is within the limit
	res := CreatePoll(models.CreatePollRequest{Title: strings.Repeat("é", 100), Options: []string{"A", "B"}})
	assert.True(t, res.OK())
}

func TestCreatePoll_CopiesOptions(t *testing.T) {
	opts := []string{"A", "B"}
	res := CreatePoll(models.CreatePollRequest{Title: "T", Options: opts})
	require.True(t, res.OK())

	opts[0] = "changed"
	assert.Equal(t, "A", res.Value.Options[0])
}

func TestVote(t *testing.T) {
	res := Vote(models.VoteRequest{OptionID: "o1"})
	require.True(t, res.OK())
	assert.Equal(t, "o1", res.Value)

	res = Vote(models.VoteRequest{})
	require.False(t, res.OK())
	assert.Equal(t, []models.FieldError{{Field: "optionId", Message: "Option ID is required"}}, res.Errors)
}

func TestValidationError(t *testing.T) {
	err := Vote(models.VoteRequest{}).Err()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 1)
	assert.Equal(t, "validation failed: optionId: Option ID is required", err.Error())
}
