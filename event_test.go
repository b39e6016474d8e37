package usacr_test

import (
	"testing"

	"github.com/fwojciec/usacr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_Validate(t *testing.T) {
	t.Parallel()

	valid := &usacr.Event{ID: "2020-26", Name: "Super Sprint Crit"}
	require.NoError(t, valid.Validate())

	require.Error(t, (&usacr.Event{Name: "Super Sprint Crit"}).Validate())
	require.Error(t, (&usacr.Event{ID: "2020-26"}).Validate())
}

func TestValidateState(t *testing.T) {
	t.Parallel()

	assert.NoError(t, usacr.ValidateState("CA"))
	assert.NoError(t, usacr.ValidateState("ny"))

	for _, s := range []string{"", "C", "CAL", "C1", "1A"} {
		assert.Error(t, usacr.ValidateState(s), s)
	}
}

func TestPermitYear(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2020, usacr.PermitYear("2020-26"))
	assert.Equal(t, 2019, usacr.PermitYear("2019-104"))
	assert.Equal(t, 0, usacr.PermitYear("26"))
	assert.Equal(t, 0, usacr.PermitYear("abc-26"))
	assert.Equal(t, 0, usacr.PermitYear(""))
}
