package client_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/usacr"
	"github.com/fwojciec/usacr/client"
	"github.com/fwojciec/usacr/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRaceCategories(t *testing.T) {
	t.Parallel()

	t.Run("unwraps the AJAX envelope", func(t *testing.T) {
		t.Parallel()

		c := &client.Client{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					assert.Contains(t, url, "info_id=101")
					assert.Contains(t, url, "label=RR")
					return `{"message": "<div id=\"race_555\">Men Cat 3</div>"}`, nil
				},
			},
			Categories: &mock.CategoryParser{
				ParseCategoriesFn: func(html string, eventID string) ([]usacr.RaceCategory, error) {
					assert.Equal(t, `<div id="race_555">Men Cat 3</div>`, html)
					assert.Equal(t, "2020-26", eventID)
					return []usacr.RaceCategory{{ID: "555", Name: "Men Cat 3", EventID: eventID}}, nil
				},
			},
			Logger: discardLogger(),
		}

		categories, err := c.GetRaceCategories(context.Background(), "101", "RR", "2020-26")
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "555", categories[0].ID)
	})

	t.Run("passes plain HTML through unchanged", func(t *testing.T) {
		t.Parallel()

		c := &client.Client{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return `<div id="race_555">Men Cat 3</div>`, nil
				},
			},
			Categories: &mock.CategoryParser{
				ParseCategoriesFn: func(html string, eventID string) ([]usacr.RaceCategory, error) {
					assert.Equal(t, `<div id="race_555">Men Cat 3</div>`, html)
					return nil, nil
				},
			},
			Logger: discardLogger(),
		}

		_, err := c.GetRaceCategories(context.Background(), "101", "RR", "2020-26")
		require.NoError(t, err)
	})

	t.Run("rejects an empty info ID", func(t *testing.T) {
		t.Parallel()

		c := &client.Client{Logger: discardLogger()}

		_, err := c.GetRaceCategories(context.Background(), "", "RR", "2020-26")
		require.Error(t, err)
		assert.Equal(t, usacr.EINVALID, usacr.ErrorCode(err))
	})
}

func TestGetRaceResults(t *testing.T) {
	t.Parallel()

	t.Run("labels the result from the category", func(t *testing.T) {
		t.Parallel()

		c := &client.Client{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					assert.Contains(t, url, "race_id=555")
					return "<table>results</table>", nil
				},
			},
			Results: &mock.ResultsParser{
				ParseResultsFn: func(html string, raceID string) (*usacr.PageResult, error) {
					return &usacr.PageResult{
						Riders:   []usacr.Rider{{RaceID: raceID, Name: "John Doe", Place: usacr.Placing{Rank: 1}}},
						RowsSeen: 1,
					}, nil
				},
			},
			Logger: discardLogger(),
		}

		category := &usacr.RaceCategory{ID: "555", Name: "Men Cat 3", EventID: "2020-26"}
		res, err := c.GetRaceResults(context.Background(), "555", category)
		require.NoError(t, err)
		assert.Equal(t, "555", res.ID)
		assert.Equal(t, "2020-26", res.EventID)
		assert.Equal(t, "Men Cat 3", res.Category)
		require.Len(t, res.Result.Riders, 1)
	})

	t.Run("falls back to the race ID without a category", func(t *testing.T) {
		t.Parallel()

		c := &client.Client{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "<table>results</table>", nil
				},
			},
			Results: &mock.ResultsParser{
				ParseResultsFn: func(html string, raceID string) (*usacr.PageResult, error) {
					return &usacr.PageResult{}, nil
				},
			},
			Logger: discardLogger(),
		}

		res, err := c.GetRaceResults(context.Background(), "555", nil)
		require.NoError(t, err)
		assert.Equal(t, "555", res.EventID)
		assert.Empty(t, res.Category)
	})

	t.Run("propagates unrecognized pages", func(t *testing.T) {
		t.Parallel()

		c := &client.Client{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "<html>maintenance</html>", nil
				},
			},
			Results: &mock.ResultsParser{
				ParseResultsFn: func(html string, raceID string) (*usacr.PageResult, error) {
					return nil, usacr.Errorf(usacr.EUNRECOGNIZED, "page is not a results page")
				},
			},
			Logger: discardLogger(),
		}

		_, err := c.GetRaceResults(context.Background(), "555", nil)
		require.Error(t, err)
		assert.Equal(t, usacr.EUNRECOGNIZED, usacr.ErrorCode(err))
	})
}

func TestGetRacesForPermit(t *testing.T) {
	t.Parallel()

	t.Run("walks disciplines and dedups race IDs", func(t *testing.T) {
		t.Parallel()

		c := &client.Client{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "<html></html>", nil
				},
			},
			Details: &mock.EventDetailsParser{
				ParseDisciplinesFn: func(html string) ([]usacr.Discipline, error) {
					return []usacr.Discipline{
						{InfoID: "101", Name: "Road Race", Label: "RR"},
						{InfoID: "102", Name: "Criterium", Label: "CRIT"},
					}, nil
				},
			},
			Categories: &mock.CategoryParser{
				ParseCategoriesFn: func(html string, eventID string) ([]usacr.RaceCategory, error) {
					// Both tabs link race 555; only one Race should come back.
					return []usacr.RaceCategory{
						{ID: "555", Name: "Men Cat 3", EventID: eventID},
						{ID: "556", Name: "Women Cat 3", EventID: eventID},
					}, nil
				},
			},
			Logger: discardLogger(),
		}

		races, err := c.GetRacesForPermit(context.Background(), "2020-26")
		require.NoError(t, err)
		require.Len(t, races, 2)
		assert.Equal(t, "555", races[0].ID)
		assert.Equal(t, "Road Race", races[0].DisciplineName)
		assert.Equal(t, "2020-26", races[0].Permit)
	})

	t.Run("skips disciplines whose fragment fails", func(t *testing.T) {
		t.Parallel()

		c := &client.Client{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					if strings.Contains(url, "info_id=101") {
						return "", usacr.Errorf(usacr.EUNAVAILABLE, "connection reset")
					}
					return "<html></html>", nil
				},
			},
			Details: &mock.EventDetailsParser{
				ParseDisciplinesFn: func(html string) ([]usacr.Discipline, error) {
					return []usacr.Discipline{
						{InfoID: "101", Name: "Road Race", Label: "RR"},
						{InfoID: "102", Name: "Criterium", Label: "CRIT"},
					}, nil
				},
			},
			Categories: &mock.CategoryParser{
				ParseCategoriesFn: func(html string, eventID string) ([]usacr.RaceCategory, error) {
					return []usacr.RaceCategory{{ID: "700", Name: "Men Cat 4", EventID: eventID}}, nil
				},
			},
			Logger: discardLogger(),
		}

		races, err := c.GetRacesForPermit(context.Background(), "2020-26")
		require.NoError(t, err)
		require.Len(t, races, 1)
		assert.Equal(t, "Criterium", races[0].DisciplineName)
	})
}
