package client

import (
	"context"

	"github.com/fwojciec/usacr"
	"github.com/fwojciec/usacr/bloom"
	"golang.org/x/sync/errgroup"
)

// CompleteEvent aggregates everything known about a permitted event: its
// details, the categories across all discipline tabs, and, when requested,
// the parsed results keyed by race ID.
type CompleteEvent struct {
	Details    *usacr.EventDetails          `json:"details"`
	Categories []usacr.RaceCategory         `json:"categories"`
	Results    map[string]*usacr.RaceResult `json:"results,omitempty"`
}

// raceOutcome holds the fetch result for a single race.
type raceOutcome struct {
	id  string
	res *usacr.RaceResult
	err error
}

// GetCompleteEvent assembles the complete data for a permitted event. Race
// results are fetched concurrently, bounded by Concurrency. Individual race
// failures are logged and omitted from Results rather than failing the
// whole crawl.
func (c *Client) GetCompleteEvent(ctx context.Context, permit string, includeResults bool) (*CompleteEvent, error) {
	details, err := c.GetEventDetails(ctx, permit)
	if err != nil {
		return nil, err
	}

	var categories []usacr.RaceCategory
	for _, d := range details.Disciplines {
		if d.InfoID == "" {
			continue
		}
		cats, err := c.GetRaceCategories(ctx, d.InfoID, d.Label, permit)
		if err != nil {
			c.logger().Warn("discipline categories unavailable", "permit", permit, "infoId", d.InfoID, "err", err)
			continue
		}
		for i := range cats {
			if cats[i].Discipline == "" {
				cats[i].Discipline = d.Name
			}
		}
		categories = append(categories, cats...)
	}

	complete := &CompleteEvent{
		Details:    details,
		Categories: categories,
	}
	if !includeResults {
		return complete, nil
	}

	// The same race shows up under several tabs; fetch each ID once.
	seen := bloom.NewSeenRaces(uint(len(categories)+64), 0.001)
	var todo []usacr.RaceCategory
	for _, cat := range categories {
		if cat.ID == "" || seen.Seen(cat.ID) {
			continue
		}
		seen.Mark(cat.ID)
		todo = append(todo, cat)
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	outCh := make(chan raceOutcome, len(todo))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, cat := range todo {
		cat := cat
		g.Go(func() error {
			res, err := c.GetRaceResults(gctx, cat.ID, &cat)
			outCh <- raceOutcome{id: cat.ID, res: res, err: err}
			return nil
		})
	}
	_ = g.Wait()
	close(outCh)

	results := make(map[string]*usacr.RaceResult, len(todo))
	for out := range outCh {
		if out.err != nil {
			c.logger().Warn("race results unavailable", "raceId", out.id, "err", out.err)
			continue
		}
		results[out.id] = out.res
	}
	complete.Results = results

	return complete, nil
}
