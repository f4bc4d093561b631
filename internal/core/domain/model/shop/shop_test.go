package shop_test

import (
	"testing"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/shop"
	"shopdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShop(t *testing.T) {
	id := kernel.NewUUID()
	owner := kernel.NewUUID()

	s, err := shop.NewShop(id, owner, " Com Tam 24h ")

	require.NoError(t, err)
	require.NoError(t, s.Validate())
	assert.True(t, s.ID().IsEqual(id))
	assert.True(t, s.OwnerAccountID().IsEqual(owner))
	assert.Equal(t, "Com Tam 24h", s.Name())

	_, err = shop.NewShop(kernel.UUID{}, owner, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "name")

	var zero shop.Shop
	require.ErrorIs(t, zero.Validate(), shop.ErrShopIsNotConstructed)
}
