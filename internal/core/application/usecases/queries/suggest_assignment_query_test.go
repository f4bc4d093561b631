package queries_test

import (
	"testing"

	"shopdelivery/internal/core/application/usecases/queries"
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSuggestAssignmentQuery_Valid(t *testing.T) {
	shopID := kernel.NewUUID()
	staffIDs := []kernel.UUID{kernel.NewUUID()}

	query, err := queries.NewSuggestAssignmentQuery(shopID, 900, 1000, staffIDs)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, shopID, query.ShopID())
	assert.Equal(t, 900, query.TimeFrame().Start())
	assert.Equal(t, 1000, query.TimeFrame().End())
	assert.Equal(t, staffIDs, query.StaffIDs())

	staffIDs[0] = kernel.NewUUID()
	assert.NotEqual(t, staffIDs, query.StaffIDs(), "the query keeps its own copy")
}

func TestNewSuggestAssignmentQuery_Invalid(t *testing.T) {
	testCases := []struct {
		name     string
		shopID   kernel.UUID
		start    int
		end      int
		staffIDs []kernel.UUID
		target   error
	}{
		{name: "zero shop", shopID: kernel.UUID{}, start: 900, end: 1000, target: kernel.ErrUUIDIsNotConstructed},
		{name: "reversed frame", shopID: kernel.NewUUID(), start: 1000, end: 900, target: errs.ErrValueIsInvalid},
		{name: "malformed time", shopID: kernel.NewUUID(), start: 961, end: 1000, target: errs.ErrValueIsInvalid},
		{
			name:     "zero staff id",
			shopID:   kernel.NewUUID(),
			start:    900,
			end:      1000,
			staffIDs: []kernel.UUID{kernel.NewUUID(), {}},
			target:   errs.ErrValueIsInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := queries.NewSuggestAssignmentQuery(tc.shopID, tc.start, tc.end, tc.staffIDs)

			assert.ErrorIs(t, err, tc.target)
		})
	}
}

func TestSuggestAssignmentQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.SuggestAssignmentQuery{}.Validate()

	assert.ErrorIs(t, err, queries.ErrSuggestAssignmentQueryIsNotConstructed)
}
