// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/tally"
	"github.com/danielhkuo/quickpoll/validate"
)

var (
	ErrNotFound      = errors.New("poll not found")
	ErrInvalidOption = errors.New("invalid option for this poll")
)

// SQLStore persists polls, options and votes in PostgreSQL or SQLite.
type SQLStore struct {
	db  *sql.DB
	now func() time.Time
}

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) func(*SQLStore) {
	return func(s *SQLStore) {
		s.now = now
	}
}

func New(db *sql.DB, opts ...func(*SQLStore)) *SQLStore {
	s := &SQLStore{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Both drivers keep microseconds, so truncate to make round-trips exact.
func (s *SQLStore) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// CreatePoll inserts the poll and its options in one transaction.
// Options keep the order of input.Options.
func (s *SQLStore) CreatePoll(ctx context.Context, input validate.PollInput) (models.PollView, error) {
	now := s.timestamp()
	poll := models.Poll{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Options:     make([]models.Option, 0, len(input.Options)),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.PollView{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO polls (id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, poll.ID, poll.Title, nullString(poll.Description), poll.CreatedAt, poll.UpdatedAt)
	if err != nil {
		return models.PollView{}, fmt.Errorf("failed to insert poll: %w", err)
	}

	for i, text := range input.Options {
		opt := models.Option{
			ID:        uuid.NewString(),
			PollID:    poll.ID,
			Text:      text,
			CreatedAt: now,
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO poll_options (id, poll_id, position, text, votes, created_at)
			VALUES ($1, $2, $3, $4, 0, $5)
		`, opt.ID, opt.PollID, i, opt.Text, opt.CreatedAt)
		if err != nil {
			return models.PollView{}, fmt.Errorf("failed to insert option %d: %w", i, err)
		}
		poll.Options = append(poll.Options, opt)
	}

	if err := tx.Commit(); err != nil {
		return models.PollView{}, fmt.Errorf("failed to commit poll: %w", err)
	}

	return tally.View(poll), nil
}

// GetPoll returns the poll view or ErrNotFound
func (s *SQLStore) GetPoll(ctx context.Context, id string) (models.PollView, error) {
	poll, err := getPoll(ctx, s.db, id)
	if err != nil {
		return models.PollView{}, err
	}
	return tally.View(poll), nil
}

// ListPolls returns every poll, newest first.
func (s *SQLStore) ListPolls(ctx context.Context) ([]models.PollView, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, created_at, updated_at
		FROM polls
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	index := make(map[string]int)
	for rows.Next() {
		poll, err := scanPoll(rows)
		if err != nil {
			return nil, err
		}
		index[poll.ID] = len(polls)
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read polls: %w", err)
	}
	rows.Close()

	optRows, err := s.db.QueryContext(ctx, `
		SELECT id, poll_id, text, votes, created_at
		FROM poll_options
		ORDER BY poll_id, position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer optRows.Close()

	for optRows.Next() {
		opt, err := scanOption(optRows)
		if err != nil {
			return nil, err
		}
		// Rows for polls created after the first query are skipped.
		if i, ok := index[opt.PollID]; ok {
			polls[i].Options = append(polls[i].Options, opt)
		}
	}
	if err := optRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}

	return tally.Views(polls), nil
}

// DeletePoll removes the poll. Options and votes go with it through
// ON DELETE CASCADE.
func (s *SQLStore) DeletePoll(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM polls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordVote validates the pair, then increments the option counter and
// appends a vote row in one transaction. The increment is a single UPDATE,
// so concurrent votes serialize on the row.
func (s *SQLStore) RecordVote(ctx context.Context, pollID, optionID string, voterHash *string) (models.PollView, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.PollView{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := ValidateVote(ctx, tx, pollID, optionID); err != nil {
		return models.PollView{}, err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE poll_options
		SET votes = votes + 1
		WHERE id = $1 AND poll_id = $2
	`, optionID, pollID)
	if err != nil {
		return models.PollView{}, fmt.Errorf("failed to increment votes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.PollView{}, fmt.Errorf("failed to increment votes: %w", err)
	}
	if n != 1 {
		return models.PollView{}, ErrInvalidOption
	}

	vote := models.Vote{
		ID:        uuid.NewString(),
		PollID:    pollID,
		OptionID:  optionID,
		VoterHash: voterHash,
		CreatedAt: s.timestamp(),
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO votes (id, poll_id, option_id, voter_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, vote.ID, vote.PollID, vote.OptionID, nullString(vote.VoterHash), vote.CreatedAt)
	if err != nil {
		return models.PollView{}, fmt.Errorf("failed to insert vote: %w", err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE polls SET updated_at = $1 WHERE id = $2`, vote.CreatedAt, pollID)
	if err != nil {
		return models.PollView{}, fmt.Errorf("failed to touch poll: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.PollView{}, fmt.Errorf("failed to commit vote: %w", err)
	}

	// Re-read after commit so the view reflects every vote stored so far.
	return s.GetPoll(ctx, pollID)
}

// CountVotes returns the number of vote rows recorded for a poll
func (s *SQLStore) CountVotes(ctx context.Context, pollID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes WHERE poll_id = $1`, pollID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}

// Ping checks that the database answers queries against the polls table.
func (s *SQLStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM polls`).Scan(&count); err != nil {
		return fmt.Errorf("failed to query polls: %w", err)
	}
	return nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

func getPoll(ctx context.Context, q queryer, id string) (models.Poll, error) {
	poll, err := scanPoll(q.QueryRowContext(ctx, `
		SELECT id, title, description, created_at, updated_at
		FROM polls
		WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Poll{}, ErrNotFound
	}
	if err != nil {
		return models.Poll{}, err
	}

	rows, err := q.QueryContext(ctx, `
		SELECT id, poll_id, text, votes, created_at
		FROM poll_options
		WHERE poll_id = $1
		ORDER BY position
	`, id)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	poll.Options = []models.Option{}
	for rows.Next() {
		opt, err := scanOption(rows)
		if err != nil {
			return models.Poll{}, err
		}
		poll.Options = append(poll.Options, opt)
	}
	if err := rows.Err(); err != nil {
		return models.Poll{}, fmt.Errorf("failed to read options: %w", err)
	}

	return poll, nil
}

func scanPoll(row scanner) (models.Poll, error) {
	var poll models.Poll
	var description sql.NullString
	err := row.Scan(&poll.ID, &poll.Title, &description, &poll.CreatedAt, &poll.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Poll{}, err
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to scan poll: %w", err)
	}
	if description.Valid {
		poll.Description = &description.String
	}
	poll.CreatedAt = poll.CreatedAt.UTC()
	poll.UpdatedAt = poll.UpdatedAt.UTC()
	return poll, nil
}

func scanOption(row scanner) (models.Option, error) {
	var opt models.Option
	if err := row.Scan(&opt.ID, &opt.PollID, &opt.Text, &opt.Votes, &opt.CreatedAt); err != nil {
		return models.Option{}, fmt.Errorf("failed to scan option: %w", err)
	}
	opt.CreatedAt = opt.CreatedAt.UTC()
	return opt, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
