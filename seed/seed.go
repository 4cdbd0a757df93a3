// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/quickpoll/metrics"
	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/validate"
)

// Embedded selects the built-in demo polls instead of a file
const Embedded = "embedded"

//go:embed demo.yaml
var demoPolls []byte

type File struct {
	Polls []Poll `yaml:"polls"`
}

type Poll struct {
	Title       string   `yaml:"title"`
	Description *string  `yaml:"description"`
	Options     []Option `yaml:"options"`
}

// Option is either a bare string or a mapping with text and votes.
type Option struct {
	Text  string `yaml:"text"`
	Votes int    `yaml:"votes"`
}

func (o *Option) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*o = Option{}
		return node.Decode(&o.Text)
	}

	// plain alias avoids recursing into this method
	type plain Option
	return node.Decode((*plain)(o))
}

// Entry is a validated seed poll with the votes to replay per option.
type Entry struct {
	Input validate.PollInput
	Votes []int
}

// Store is the part of the poll store seeding needs
type Store interface {
	CreatePoll(ctx context.Context, input validate.PollInput) (models.PollView, error)
	ListPolls(ctx context.Context) ([]models.PollView, error)
	RecordVote(ctx context.Context, pollID, optionID string, voterHash *string) (models.PollView, error)
}

// Load reads seed polls from path, or the demo set when path is Embedded.
func Load(path string) ([]Entry, error) {
	if path == Embedded {
		return Parse(demoPolls)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML and runs every poll through the same validation as
// the HTTP API. The first invalid poll fails the whole file.
func Parse(data []byte) ([]Entry, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	entries := make([]Entry, 0, len(file.Polls))
	for i, p := range file.Polls {
		req := models.CreatePollRequest{
			Title:       p.Title,
			Description: p.Description,
			Options:     make([]string, len(p.Options)),
		}
		votes := make([]int, len(p.Options))
		for j, opt := range p.Options {
			if opt.Votes < 0 {
				return nil, fmt.Errorf("seed poll %d: option %q has negative votes", i, opt.Text)
			}
			req.Options[j] = opt.Text
			votes[j] = opt.Votes
		}

		res := validate.CreatePoll(req)
		if !res.OK() {
			return nil, fmt.Errorf("seed poll %d: %w", i, res.Err())
		}
		entries = append(entries, Entry{Input: res.Value, Votes: votes})
	}
	return entries, nil
}

// Apply creates each poll in order, then records its seed votes through
// the store. Polls whose title is already stored are skipped, so applying
// the same file on every start creates them once. Returns the views of the
// polls created by this call and stops at the first store error.
func Apply(ctx context.Context, store Store, entries []Entry) ([]models.PollView, error) {
	if store == nil {
		return nil, errors.New("seed: nil store")
	}

	existing, err := store.ListPolls(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list existing polls: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p.Title] = true
	}

	views := make([]models.PollView, 0, len(entries))
	for _, entry := range entries {
		if seen[entry.Input.Title] {
			slog.Info("seed poll already present", "title", entry.Input.Title)
			continue
		}

		view, err := store.CreatePoll(ctx, entry.Input)
		if err != nil {
			return views, fmt.Errorf("failed to seed poll %q: %w", entry.Input.Title, err)
		}
		seen[view.Title] = true
		metrics.PollsCreated.Inc()

		pollID, options := view.ID, view.Options
		for i, n := range entry.Votes {
			for k := 0; k < n; k++ {
				view, err = store.RecordVote(ctx, pollID, options[i].ID, nil)
				if err != nil {
					return views, fmt.Errorf("failed to seed votes for %q: %w", entry.Input.Title, err)
				}
			}
		}

		slog.Info("poll seeded", "poll_id", view.ID, "title", view.Title, "total_votes", view.TotalVotes)
		views = append(views, view)
	}
	return views, nil
}
