package queries_test

import (
	"testing"

	"shopdelivery/internal/core/application/usecases/queries"
	"shopdelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDeliveryStaffQuery_Valid(t *testing.T) {
	shopID := kernel.NewUUID()

	query, err := queries.NewGetDeliveryStaffQuery(shopID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, shopID, query.ShopID())
}

func TestNewGetDeliveryStaffQuery_ZeroShop(t *testing.T) {
	_, err := queries.NewGetDeliveryStaffQuery(kernel.UUID{})

	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetDeliveryStaffQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.GetDeliveryStaffQuery{}.Validate()

	assert.ErrorIs(t, err, queries.ErrGetDeliveryStaffQueryIsNotConstructed)
}

func TestNewGetPackageableOrdersQuery(t *testing.T) {
	query, err := queries.NewGetPackageableOrdersQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetPackageableOrdersQuery(kernel.UUID{})
	require.Error(t, err)

	assert.ErrorIs(t, queries.GetPackageableOrdersQuery{}.Validate(), queries.ErrGetPackageableOrdersQueryIsNotConstructed)
}
