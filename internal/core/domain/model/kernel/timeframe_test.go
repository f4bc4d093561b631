package kernel_test

import (
	"testing"
	"time"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeTime(t *testing.T) {
	t.Run("encode keeps numeric order", func(t *testing.T) {
		assert.Equal(t, 930, kernel.EncodeTime(9, 30))
		assert.Equal(t, 0, kernel.EncodeTime(0, 0))
		assert.Equal(t, 2359, kernel.EncodeTime(23, 59))
		assert.Less(t, kernel.EncodeTime(9, 59), kernel.EncodeTime(10, 0))
	})

	t.Run("decode splits hour and minute", func(t *testing.T) {
		h, m, err := kernel.DecodeTime(930)

		require.NoError(t, err)
		assert.Equal(t, 9, h)
		assert.Equal(t, 30, m)
	})

	t.Run("decode rejects malformed values", func(t *testing.T) {
		_, _, err := kernel.DecodeTime(975)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, _, err = kernel.DecodeTime(2400)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, _, err = kernel.DecodeTime(-5)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewTimeFrame(t *testing.T) {
	t.Run("valid frame", func(t *testing.T) {
		f, err := kernel.NewTimeFrame(900, 1000)

		require.NoError(t, err)
		require.NoError(t, f.Validate())
		assert.Equal(t, 900, f.Start())
		assert.Equal(t, 1000, f.End())
		assert.Equal(t, "09:00 - 10:00", f.Label())
	})

	t.Run("start must precede end", func(t *testing.T) {
		_, err := kernel.NewTimeFrame(1000, 1000)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("both bounds are checked", func(t *testing.T) {
		_, err := kernel.NewTimeFrame(961, 2500)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "startTime")
		assert.Contains(t, err.Error(), "endTime")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var f kernel.TimeFrame

		require.ErrorIs(t, f.Validate(), kernel.ErrTimeFrameIsNotConstructed)
	})

	t.Run("equality is by value", func(t *testing.T) {
		a, _ := kernel.NewTimeFrame(900, 1000)
		b, _ := kernel.NewTimeFrame(900, 1000)
		c, _ := kernel.NewTimeFrame(1000, 1100)

		assert.True(t, a.Equals(b))
		assert.False(t, a.Equals(c))
	})
}

func TestStartOfSlot(t *testing.T) {
	day := time.Date(2024, time.March, 5, 17, 45, 12, 0, kernel.BusinessLocation)

	got := kernel.StartOfSlot(day, 1230)

	assert.Equal(t, time.Date(2024, time.March, 5, 12, 30, 0, 0, kernel.BusinessLocation), got)

	f, _ := kernel.NewTimeFrame(1200, 1300)
	assert.Equal(t, 13, f.EndOn(day).Hour())
	assert.Equal(t, 1200, kernel.EncodeClock(f.StartOn(day)))
}
