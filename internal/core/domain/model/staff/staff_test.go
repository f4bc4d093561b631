package staff_test

import (
	"strings"
	"testing"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/staff"
	"shopdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaff(t *testing.T) {
	shopID := kernel.NewUUID()

	t.Run("should create available staff", func(t *testing.T) {
		s, err := staff.NewStaff(kernel.NewUUID(), shopID, kernel.NewUUID(), "  Minh Tran ", "0901")

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "Minh Tran", s.FullName())
		assert.Equal(t, "0901", s.Phone())
		assert.Equal(t, staff.Available, s.Status())
		assert.True(t, s.WorksFor(shopID))
		assert.False(t, s.WorksFor(kernel.NewUUID()))
	})

	t.Run("should require name and ids", func(t *testing.T) {
		_, err := staff.NewStaff(kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, " ", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "shopID")
		assert.Contains(t, err.Error(), "accountID")
		assert.Contains(t, err.Error(), "fullName")
	})

	t.Run("should reject long name", func(t *testing.T) {
		_, err := staff.NewStaff(kernel.NewUUID(), shopID, kernel.NewUUID(), strings.Repeat("a", 256), "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreStaff(t *testing.T) {
	s, err := staff.RestoreStaff(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "An", "", staff.Busy)
	require.NoError(t, err)
	assert.True(t, s.IsBusy())

	_, err = staff.RestoreStaff(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "An", "", staff.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStaff_AssignRelease(t *testing.T) {
	s, err := staff.NewStaff(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "An", "")
	require.NoError(t, err)

	s.Assign()
	assert.Equal(t, staff.Busy, s.Status())

	s.Assign()
	assert.Equal(t, staff.Busy, s.Status())

	s.Release()
	assert.Equal(t, staff.Available, s.Status())
	assert.Equal(t, "Available", s.Status().String())
}
