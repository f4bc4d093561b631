package guard_test

import (
	"errors"
	"testing"

	"shopdelivery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("package request not constructed")

	t.Run("constructed guard passes with any error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("copies keep their state", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		copied := g

		require.NoError(t, copied.Validate(errNotConstructed))
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	type slotRequest struct {
		start int
		end   int
		guard guard.ConstructorGuard
	}
	errSlotNotConstructed := errors.New("slotRequest must be created via newSlotRequest")

	newSlotRequest := func(start, end int) (slotRequest, error) {
		if start >= end {
			return slotRequest{}, errors.New("start must be before end")
		}
		return slotRequest{start: start, end: end, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor result validates", func(t *testing.T) {
		r, err := newSlotRequest(900, 1000)

		require.NoError(t, err)
		require.NoError(t, r.guard.Validate(errSlotNotConstructed))
	})

	t.Run("literal does not validate", func(t *testing.T) {
		r := slotRequest{start: 900, end: 1000}

		assert.Equal(t, errSlotNotConstructed, r.guard.Validate(errSlotNotConstructed))
	})

	t.Run("constructor rejects inverted slot", func(t *testing.T) {
		_, err := newSlotRequest(1000, 900)

		require.Error(t, err)
	})
}
