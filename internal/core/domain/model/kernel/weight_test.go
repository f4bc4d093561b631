package kernel_test

import (
	"testing"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeight(t *testing.T) {
	t.Run("sums exactly", func(t *testing.T) {
		a, err := kernel.NewWeightFromFloat(0.1)
		require.NoError(t, err)
		b, err := kernel.NewWeightFromFloat(0.2)
		require.NoError(t, err)

		sum := a.Add(b)

		assert.True(t, sum.Decimal().Equal(decimal.RequireFromString("0.3")))
		assert.Equal(t, "0.3kg", sum.String())
	})

	t.Run("rejects negative", func(t *testing.T) {
		_, err := kernel.NewWeightFromFloat(-1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is zero", func(t *testing.T) {
		var w kernel.Weight
		two, _ := kernel.NewWeightFromFloat(2)

		assert.Equal(t, -1, w.Cmp(two))
		assert.True(t, w.Add(two).Equal(two))
		assert.InDelta(t, 2.0, two.Float64(), 0.0001)
	})
}
