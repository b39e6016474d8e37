package usacr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/usacr"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := usacr.Errorf(usacr.EUNRECOGNIZED, "not a results page")
		assert.Equal(t, usacr.EUNRECOGNIZED, usacr.ErrorCode(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("fetching: %w", usacr.Errorf(usacr.ENOTFOUND, "page not cached"))
		assert.Equal(t, usacr.ENOTFOUND, usacr.ErrorCode(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, usacr.EINTERNAL, usacr.ErrorCode(errors.New("boom")))
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", usacr.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "no results table", usacr.ErrorMessage(usacr.Errorf(usacr.EUNRECOGNIZED, "no results table")))
	assert.Equal(t, "Internal error.", usacr.ErrorMessage(errors.New("boom")))
	assert.Equal(t, "", usacr.ErrorMessage(nil))
}
