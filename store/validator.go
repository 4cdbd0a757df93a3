// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ValidateVote confirms the poll exists and the option belongs to it.
// Returns ErrNotFound for a missing poll and ErrInvalidOption for an
// option that is missing or attached to another poll.
func ValidateVote(ctx context.Context, q queryer, pollID, optionID string) error {
	var exists bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM polls WHERE id = $1)
	`, pollID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to query poll: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	var ownerID string
	err = q.QueryRowContext(ctx, `
		SELECT poll_id FROM poll_options WHERE id = $1
	`, optionID).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrInvalidOption
	}
	if err != nil {
		return fmt.Errorf("failed to query option: %w", err)
	}
	if ownerID != pollID {
		return ErrInvalidOption
	}

	return nil
}
