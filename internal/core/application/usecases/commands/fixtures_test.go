package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/order"
	"shopdelivery/internal/core/domain/model/shop"
	"shopdelivery/internal/core/domain/model/staff"

	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, time.March, 5, 0, 0, 0, 0, kernel.BusinessLocation)

func at(hour, minute int) time.Time {
	return today.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newShop(t *testing.T) *shop.Shop {
	t.Helper()
	s, err := shop.NewShop(kernel.NewUUID(), kernel.NewUUID(), "Banh Mi 24")
	require.NoError(t, err)
	return s
}

func newStaff(t *testing.T, shopID kernel.UUID, name string) *staff.Staff {
	t.Helper()
	s, err := staff.NewStaff(kernel.NewUUID(), shopID, kernel.NewUUID(), name, "0900000000")
	require.NoError(t, err)
	return s
}

func newOrderWithStatus(
	t *testing.T,
	shopID kernel.UUID,
	start, end int,
	kg float64,
	status order.Status,
) *order.Order {
	t.Helper()
	frame, err := kernel.NewTimeFrame(start, end)
	require.NoError(t, err)
	weight, err := kernel.NewWeightFromFloat(kg)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), shopID, today, frame, weight, "B1", status, nil)
	require.NoError(t, err)
	return o
}

func preparingOrder(t *testing.T, shopID kernel.UUID, start, end int, kg float64) *order.Order {
	t.Helper()
	return newOrderWithStatus(t, shopID, start, end, kg, order.Preparing)
}
