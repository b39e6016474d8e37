package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/usacr"
	"github.com/fwojciec/usacr/client"
	main "github.com/fwojciec/usacr/cmd/usacr"
	"github.com/fwojciec/usacr/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdEvents(t *testing.T) {
	t.Parallel()

	t.Run("prints the listing", func(t *testing.T) {
		t.Parallel()

		c := &client.Client{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "<html>listing</html>", nil
				},
			},
			Events: &mock.EventListParser{
				ParseEventsFn: func(html string, state string, year int) ([]usacr.Event, error) {
					return []usacr.Event{
						{ID: "1", Name: "Mountain Challenge", Permit: "2020-26", State: state, Year: year,
							Date: time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)},
					}, nil
				},
			},
		}
		deps, stdout, stderr := testDeps(c)

		cmd := &main.EventsCmd{State: "co", Year: 2020}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "2020-06-15")
		assert.Contains(t, stdout.String(), "2020-26")
		assert.Contains(t, stdout.String(), "Mountain Challenge")
		assert.Contains(t, stdout.String(), "1 events.")
		assert.Empty(t, stderr.String())
	})

	t.Run("reports an empty listing", func(t *testing.T) {
		t.Parallel()

		c := &client.Client{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "<html>listing</html>", nil
				},
			},
			Events: &mock.EventListParser{
				ParseEventsFn: func(html string, state string, year int) ([]usacr.Event, error) {
					return nil, nil
				},
			},
		}
		deps, stdout, _ := testDeps(c)

		cmd := &main.EventsCmd{State: "CO", Year: 2020}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No events found for CO in 2020.")
	})

	t.Run("reports an invalid state", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(&client.Client{})

		cmd := &main.EventsCmd{State: "Colorado", Year: 2020}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, usacr.EINVALID, usacr.ErrorCode(err))
		assert.Contains(t, stderr.String(), "two-letter")
	})
}
