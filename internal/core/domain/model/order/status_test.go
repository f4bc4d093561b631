package order_test

import (
	"testing"

	"shopdelivery/internal/core/domain/model/order"
	"shopdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{
		order.Pending, order.Confirmed, order.Preparing, order.Delivering,
		order.Delivered, order.Cancelled, order.FailDelivery,
	} {
		t.Run(s.String(), func(t *testing.T) {
			require.NoError(t, s.Validate())
		})
	}

	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(99).Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatus_ValidatePackageable(t *testing.T) {
	require.NoError(t, order.Preparing.ValidatePackageable())

	for _, s := range []order.Status{order.Pending, order.Confirmed, order.Delivering, order.Cancelled} {
		err := s.ValidatePackageable()

		require.Error(t, err, s.String())
		assert.Contains(t, err.Error(), s.String()+" is not a valid status to package")
	}
}

func TestStatus_ValidateCanHavePackage(t *testing.T) {
	testCases := []struct {
		status   order.Status
		packaged bool
		valid    bool
	}{
		{order.Confirmed, false, true},
		{order.Confirmed, true, false},
		{order.Preparing, false, true},
		{order.Preparing, true, true},
		{order.Delivering, true, true},
		{order.Delivering, false, false},
		{order.Cancelled, true, true},
		{order.Cancelled, false, true},
	}

	for _, tc := range testCases {
		err := tc.status.ValidateCanHavePackage(tc.packaged)
		if tc.valid {
			require.NoError(t, err, "%s packaged=%v", tc.status, tc.packaged)
		} else {
			require.Error(t, err, "%s packaged=%v", tc.status, tc.packaged)
		}
	}
}
