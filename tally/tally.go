// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"math"

	"github.com/danielhkuo/quickpoll/models"
)

// View maps a stored poll and its options to the shape returned to callers.
// It does not modify poll.
func View(poll models.Poll) models.PollView {
	view := models.PollView{
		ID:        poll.ID,
		Title:     poll.Title,
		Options:   make([]models.OptionView, 0, len(poll.Options)),
		CreatedAt: poll.CreatedAt,
	}
	if poll.Description != nil {
		view.Description = *poll.Description
	}

	for _, opt := range poll.Options {
		view.Options = append(view.Options, models.OptionView{
			ID:    opt.ID,
			Text:  opt.Text,
			Votes: opt.Votes,
		})
		view.TotalVotes += opt.Votes
	}

	return view
}

// Views maps a list of polls, preserving order
func Views(polls []models.Poll) []models.PollView {
	views := make([]models.PollView, 0, len(polls))
	for _, p := range polls {
		views = append(views, View(p))
	}
	return views
}

// Percentage returns round(votes / total * 100), or 0 when total is 0.
func Percentage(votes, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(votes) / float64(total) * 100))
}

// Percentages returns one percentage per option, in option order.
// Rounded values are not forced to sum to 100.
func Percentages(view models.PollView) []int {
	out := make([]int, len(view.Options))
	for i, opt := range view.Options {
		out[i] = Percentage(opt.Votes, view.TotalVotes)
	}
	return out
}

// Results attaches per-option percentages to a view.
func Results(view models.PollView) []models.OptionResult {
	pct := Percentages(view)
	results := make([]models.OptionResult, len(view.Options))
	for i, opt := range view.Options {
		results[i] = models.OptionResult{
			ID:         opt.ID,
			Text:       opt.Text,
			Votes:      opt.Votes,
			Percentage: pct[i],
		}
	}
	return results
}
