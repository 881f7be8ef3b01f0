package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelsAreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotImplemented, ErrWrongType, ErrInvalidArgument, ErrNotSorted,
		ErrMissingElement, ErrNoSuchElement, ErrIllegalState, ErrUnsupported,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%w: element 3 > element 4", ErrNotSorted)

	require.ErrorIs(t, err, ErrNotSorted)
	assert.NotErrorIs(t, err, ErrMissingElement)
}

func TestCollection(t *testing.T) {
	t.Parallel()

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Equal(t, 0, c.Len())
		assert.NoError(t, c.GetError())
	})

	t.Run("returns single error unwrapped", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err1 := errors.New("error 1") //nolint:err113
		c.Add(err1)

		assert.Equal(t, err1, c.GetError())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrNotSorted)
		c.Add(nil)
		c.Add(ErrMissingElement)

		assert.Equal(t, 2, c.Len())

		err := c.GetError()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrNotSorted)
		require.ErrorIs(t, err, ErrMissingElement)
	})

	t.Run("clear resets", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrIllegalState)
		c.Clear()

		assert.False(t, c.HasError())
		assert.NoError(t, c.GetError())
	})
}
