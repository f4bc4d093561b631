package services

import (
	"fmt"
	"time"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const ordersPerVolumeStep = 5

// WorkloadInput is the snapshot of one candidate package. Minutes are external estimates.
type WorkloadInput struct {
	EndTime               int
	OrderWeights          []decimal.Decimal
	MinutesToWaitCustomer int
	MinutesToMove         int
}

// WorkloadView is derived from a WorkloadInput and never stored.
type WorkloadView struct {
	OrderCount            int
	Weight                kernel.Weight
	ExtraMinutesForVolume int
	TotalHandlingMinutes  int
	SuggestedStartTime    int
	CurrentTaskLoad       kernel.Weight
}

// WorkloadEstimator prices a package in minutes. Handling time grows by a fixed step for
// every started group of five orders.
type WorkloadEstimator struct {
	minutesPerFiveOrders int
}

func NewWorkloadEstimator(minutesPerFiveOrders int) (WorkloadEstimator, error) {
	if minutesPerFiveOrders < 0 {
		return WorkloadEstimator{}, errs.NewValueIsInvalidErrorWithCause(
			"minutesPerFiveOrders", fmt.Errorf("%d is negative", minutesPerFiveOrders))
	}
	return WorkloadEstimator{minutesPerFiveOrders: minutesPerFiveOrders}, nil
}

// Estimate computes the view; the suggested start works back from the slot end on today.
// A suggestion before midnight wraps to the previous evening's HHmm.
func (e WorkloadEstimator) Estimate(today time.Time, in WorkloadInput) (WorkloadView, error) {
	if err := kernel.ValidateEncodedTime("endTime", in.EndTime); err != nil {
		return WorkloadView{}, NewInvalidWorkloadInputError(err.Error())
	}
	if in.MinutesToWaitCustomer < 0 || in.MinutesToMove < 0 {
		return WorkloadView{}, NewInvalidWorkloadInputError(
			fmt.Sprintf("minutes must not be negative: wait %d, move %d", in.MinutesToWaitCustomer, in.MinutesToMove))
	}

	var weight kernel.Weight
	for i, w := range in.OrderWeights {
		orderWeight, err := kernel.NewWeight(w)
		if err != nil {
			return WorkloadView{}, NewInvalidWorkloadInputError(fmt.Sprintf("order %d: %v", i, err))
		}
		weight = weight.Add(orderWeight)
	}

	count := len(in.OrderWeights)
	steps := (count + ordersPerVolumeStep - 1) / ordersPerVolumeStep
	extra := steps * e.minutesPerFiveOrders
	total := in.MinutesToWaitCustomer + extra + in.MinutesToMove

	start := kernel.StartOfSlot(today, in.EndTime).Add(-time.Duration(total) * time.Minute)

	return WorkloadView{
		OrderCount:            count,
		Weight:                weight,
		ExtraMinutesForVolume: extra,
		TotalHandlingMinutes:  total,
		SuggestedStartTime:    kernel.EncodeClock(start),
		CurrentTaskLoad:       weight,
	}, nil
}
