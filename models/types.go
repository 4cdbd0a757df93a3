package models

import "time"

// Poll limits
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MinOptions           = 2
	MaxOptions           = 10
)

// Request types

type CreatePollRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Options     []string `json:"options"`
}

type VoteRequest struct {
	OptionID string `json:"optionId"`
}

// Domain types

type Poll struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Options     []Option  `json:"options"`
}

type Option struct {
	ID        string    `json:"id"`
	PollID    string    `json:"poll_id"`
	Text      string    `json:"text"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

type Vote struct {
	ID        string    `json:"id"`
	PollID    string    `json:"poll_id"`
	OptionID  string    `json:"option_id"`
	VoterHash *string   `json:"-"` // Never expose in JSON
	CreatedAt time.Time `json:"created_at"`
}

// View types

// PollView is the read-only shape returned to callers.
type PollView struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Options     []OptionView `json:"options"`
	CreatedAt   time.Time    `json:"createdAt"`
	TotalVotes  int          `json:"totalVotes"`
}

type OptionView struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

type OptionResult struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Votes      int    `json:"votes"`
	Percentage int    `json:"percentage"`
}

type PollResultsResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Options     []OptionResult `json:"options"`
	CreatedAt   time.Time      `json:"createdAt"`
	CreatedAgo  string         `json:"createdAgo"`
	TotalVotes  int            `json:"totalVotes"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Error response

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}
