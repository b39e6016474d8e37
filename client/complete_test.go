package client_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/usacr"
	"github.com/fwojciec/usacr/client"
	"github.com/fwojciec/usacr/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeEventFetcher(t *testing.T, failingRaceID string) (*mock.Fetcher, *sync.Map) {
	t.Helper()

	var raceFetches sync.Map
	f := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			switch {
			case strings.Contains(url, "race_id="):
				id := url[strings.Index(url, "race_id=")+len("race_id="):]
				if id == failingRaceID {
					return "", usacr.Errorf(usacr.EUNAVAILABLE, "connection reset")
				}
				count, _ := raceFetches.LoadOrStore(id, 0)
				raceFetches.Store(id, count.(int)+1)
				return "<table>results</table>", nil
			default:
				return "<html></html>", nil
			}
		},
	}
	return f, &raceFetches
}

func TestGetCompleteEvent(t *testing.T) {
	t.Parallel()

	details := &mock.EventDetailsParser{
		ParseDetailsFn: func(html string, permit string) (*usacr.EventDetails, error) {
			return &usacr.EventDetails{
				Permit: permit,
				Name:   "Mountain Challenge",
				Disciplines: []usacr.Discipline{
					{InfoID: "101", Name: "Road Race", Label: "RR"},
					{InfoID: "102", Name: "Criterium", Label: "CRIT"},
				},
			}, nil
		},
	}

	categories := &mock.CategoryParser{
		ParseCategoriesFn: func(html string, eventID string) ([]usacr.RaceCategory, error) {
			// Both tabs list the same two races.
			return []usacr.RaceCategory{
				{ID: "555", Name: "Men Cat 3", EventID: eventID},
				{ID: "556", Name: "Women Cat 3", EventID: eventID},
			}, nil
		},
	}

	results := &mock.ResultsParser{
		ParseResultsFn: func(html string, raceID string) (*usacr.PageResult, error) {
			return &usacr.PageResult{
				Riders:   []usacr.Rider{{RaceID: raceID, Name: "John Doe", Place: usacr.Placing{Rank: 1}}},
				RowsSeen: 1,
			}, nil
		},
	}

	t.Run("without results", func(t *testing.T) {
		t.Parallel()

		fetcher, raceFetches := completeEventFetcher(t, "")
		c := &client.Client{
			Fetcher:    fetcher,
			Details:    details,
			Categories: categories,
			Results:    results,
			Logger:     discardLogger(),
		}

		complete, err := c.GetCompleteEvent(context.Background(), "2020-26", false)
		require.NoError(t, err)
		assert.Equal(t, "Mountain Challenge", complete.Details.Name)
		assert.Len(t, complete.Categories, 4)
		assert.Nil(t, complete.Results)

		fetched := 0
		raceFetches.Range(func(_, _ any) bool { fetched++; return true })
		assert.Zero(t, fetched)
	})

	t.Run("fetches each race once despite duplicate listings", func(t *testing.T) {
		t.Parallel()

		fetcher, raceFetches := completeEventFetcher(t, "")
		c := &client.Client{
			Fetcher:     fetcher,
			Details:     details,
			Categories:  categories,
			Results:     results,
			Concurrency: 2,
			Logger:      discardLogger(),
		}

		complete, err := c.GetCompleteEvent(context.Background(), "2020-26", true)
		require.NoError(t, err)
		require.Len(t, complete.Results, 2)
		assert.Equal(t, "Men Cat 3", complete.Results["555"].Category)
		assert.Equal(t, "2020-26", complete.Results["555"].EventID)

		raceFetches.Range(func(id, count any) bool {
			assert.Equal(t, 1, count, "race %v fetched more than once", id)
			return true
		})
	})

	t.Run("omits races that fail instead of failing the crawl", func(t *testing.T) {
		t.Parallel()

		fetcher, _ := completeEventFetcher(t, "555")
		c := &client.Client{
			Fetcher:    fetcher,
			Details:    details,
			Categories: categories,
			Results:    results,
			Logger:     discardLogger(),
		}

		complete, err := c.GetCompleteEvent(context.Background(), "2020-26", true)
		require.NoError(t, err)
		require.Len(t, complete.Results, 1)
		assert.Contains(t, complete.Results, "556")
	})

	t.Run("fills the discipline on categories that lack one", func(t *testing.T) {
		t.Parallel()

		fetcher, _ := completeEventFetcher(t, "")
		c := &client.Client{
			Fetcher:    fetcher,
			Details:    details,
			Categories: categories,
			Results:    results,
			Logger:     discardLogger(),
		}

		complete, err := c.GetCompleteEvent(context.Background(), "2020-26", false)
		require.NoError(t, err)
		require.NotEmpty(t, complete.Categories)
		assert.Equal(t, "Road Race", complete.Categories[0].Discipline)
	})

	t.Run("propagates detail failures", func(t *testing.T) {
		t.Parallel()

		c := &client.Client{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "", usacr.Errorf(usacr.EUNAVAILABLE, "connection refused")
				},
			},
			Details: details,
			Logger:  discardLogger(),
		}

		_, err := c.GetCompleteEvent(context.Background(), "2020-26", true)
		require.Error(t, err)
		assert.Equal(t, usacr.EUNAVAILABLE, usacr.ErrorCode(err))
	})
}
