package services_test

import (
	"testing"
	"time"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var (
	today         = time.Date(2024, time.March, 5, 0, 0, 0, 0, kernel.BusinessLocation)
	defaultShopID = kernel.NewUUID()
)

func at(hour, minute int) time.Time {
	return today.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func frame(t *testing.T, start, end int) kernel.TimeFrame {
	t.Helper()
	f, err := kernel.NewTimeFrame(start, end)
	require.NoError(t, err)
	return f
}

func weight(t *testing.T, kg float64) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeightFromFloat(kg)
	require.NoError(t, err)
	return w
}

type orderSpec struct {
	shopID    kernel.UUID
	date      time.Time
	start     int
	end       int
	kg        float64
	status    order.Status
	packageID *kernel.UUID
}

func newOrder(t *testing.T, s orderSpec) *order.Order {
	t.Helper()
	if s.shopID.Validate() != nil {
		s.shopID = defaultShopID
	}
	if s.date.IsZero() {
		s.date = today
	}
	if s.status == order.Unknown {
		s.status = order.Preparing
	}
	if s.start == 0 && s.end == 0 {
		s.start, s.end = 900, 1000
	}
	o, err := order.RestoreOrder(kernel.NewUUID(), s.shopID, s.date, frame(t, s.start, s.end),
		weight(t, s.kg), "B1", s.status, s.packageID)
	require.NoError(t, err)
	return o
}
