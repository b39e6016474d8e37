package usacr_test

import (
	"testing"
	"time"

	"github.com/fwojciec/usacr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlacing(t *testing.T) {
	t.Parallel()

	t.Run("numeric ranks", func(t *testing.T) {
		t.Parallel()

		p, err := usacr.ParsePlacing("1")
		require.NoError(t, err)
		assert.Equal(t, 1, p.Rank)
		assert.True(t, p.Finished())

		p, err = usacr.ParsePlacing(" 12. ")
		require.NoError(t, err)
		assert.Equal(t, 12, p.Rank)
	})

	t.Run("non-finish states", func(t *testing.T) {
		t.Parallel()

		for raw, want := range map[string]usacr.NonFinish{
			"DNF": usacr.DNF,
			"dns": usacr.DNS,
			"DQ":  usacr.DQ,
			"DSQ": usacr.DQ,
		} {
			p, err := usacr.ParsePlacing(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, want, p.State, raw)
			assert.False(t, p.Finished(), raw)
		}
	})

	t.Run("rejects malformed placings", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "0", "-3", "first", "1st"} {
			_, err := usacr.ParsePlacing(raw)
			require.Error(t, err, raw)
			assert.Equal(t, usacr.EINVALID, usacr.ErrorCode(err), raw)
		}
	})

	t.Run("string round trip", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "3", usacr.Placing{Rank: 3}.String())
		assert.Equal(t, "DNF", usacr.Placing{State: usacr.DNF}.String())
	})
}

func TestRider_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a finisher with a time", func(t *testing.T) {
		t.Parallel()

		rider := &usacr.Rider{
			Name:  "John Doe",
			Place: usacr.Placing{Rank: 1},
			Time:  52 * time.Minute,
		}
		require.NoError(t, rider.Validate())
	})

	t.Run("accepts a non-finisher without a time", func(t *testing.T) {
		t.Parallel()

		rider := &usacr.Rider{
			Name:  "Jane Roe",
			Place: usacr.Placing{State: usacr.DNF},
		}
		require.NoError(t, rider.Validate())
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		t.Parallel()

		rider := &usacr.Rider{Name: "  ", Place: usacr.Placing{Rank: 1}}
		err := rider.Validate()
		require.Error(t, err)
		assert.Equal(t, usacr.EINVALID, usacr.ErrorCode(err))
	})

	t.Run("rejects a missing placing", func(t *testing.T) {
		t.Parallel()

		rider := &usacr.Rider{Name: "John Doe"}
		require.Error(t, rider.Validate())
	})

	t.Run("rejects a time on a non-finish placing", func(t *testing.T) {
		t.Parallel()

		rider := &usacr.Rider{
			Name:  "John Doe",
			Place: usacr.Placing{State: usacr.DNS},
			Time:  time.Minute,
		}
		err := rider.Validate()
		require.Error(t, err)
		assert.Equal(t, usacr.EINVALID, usacr.ErrorCode(err))
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		rider := &usacr.Rider{Name: "John Doe", Place: usacr.Placing{Rank: 2}}
		assert.Equal(t, rider.Validate(), rider.Validate())
	})
}

func TestRaceResult_Validate(t *testing.T) {
	t.Parallel()

	valid := &usacr.RaceResult{ID: "1337633", EventID: "2020-26"}
	require.NoError(t, valid.Validate())

	require.Error(t, (&usacr.RaceResult{EventID: "2020-26"}).Validate())
	require.Error(t, (&usacr.RaceResult{ID: "1337633"}).Validate())
}
