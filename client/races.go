package client

import (
	"context"

	"github.com/fwojciec/usacr"
	"github.com/fwojciec/usacr/bloom"
	"github.com/fwojciec/usacr/http"
)

// GetRaceCategories returns the race categories listed in a discipline's
// info fragment. The permit is recorded as each category's event ID.
func (c *Client) GetRaceCategories(ctx context.Context, infoID, label, permit string) ([]usacr.RaceCategory, error) {
	if infoID == "" {
		return nil, usacr.Errorf(usacr.EINVALID, "info ID required")
	}

	body, err := c.page(ctx, http.InfoURL(infoID, label))
	if err != nil {
		return nil, err
	}

	return c.Categories.ParseCategories(unwrapFragment(body), permit)
}

// GetRaceResults fetches and parses the results for one race. The category,
// when known, labels the result and supplies its event association;
// otherwise the race ID stands in for the event ID.
func (c *Client) GetRaceResults(ctx context.Context, raceID string, category *usacr.RaceCategory) (*usacr.RaceResult, error) {
	if raceID == "" {
		return nil, usacr.Errorf(usacr.EINVALID, "race ID required")
	}

	body, err := c.page(ctx, http.RaceURL(raceID))
	if err != nil {
		return nil, err
	}

	page, err := c.Results.ParseResults(unwrapFragment(body), raceID)
	if err != nil {
		return nil, err
	}

	res := &usacr.RaceResult{
		ID:      raceID,
		EventID: raceID,
		Result:  *page,
	}
	if category != nil {
		res.Category = category.Name
		if category.EventID != "" {
			res.EventID = category.EventID
		}
	}
	return res, nil
}

// GetRacesForPermit walks a permit's discipline tabs and returns every race
// they link to. Disciplines whose fragment cannot be fetched or parsed are
// skipped with a warning; duplicate race IDs across tabs are reported once.
func (c *Client) GetRacesForPermit(ctx context.Context, permit string) ([]usacr.Race, error) {
	disciplines, err := c.GetDisciplines(ctx, permit)
	if err != nil {
		return nil, err
	}

	seen := bloom.NewSeenRaces(uint(len(disciplines)*32+64), 0.001)
	var races []usacr.Race
	for _, d := range disciplines {
		if d.InfoID == "" {
			continue
		}

		categories, err := c.GetRaceCategories(ctx, d.InfoID, d.Label, permit)
		if err != nil {
			c.logger().Warn("discipline categories unavailable", "permit", permit, "infoId", d.InfoID, "err", err)
			continue
		}

		for _, cat := range categories {
			if cat.ID == "" || seen.Seen(cat.ID) {
				continue
			}
			seen.Mark(cat.ID)
			races = append(races, usacr.Race{
				ID:             cat.ID,
				Name:           cat.Name,
				Permit:         permit,
				DisciplineID:   d.InfoID,
				DisciplineName: d.Name,
			})
		}
	}

	return races, nil
}
