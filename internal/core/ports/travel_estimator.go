package ports

import (
	"context"

	"shopdelivery/internal/core/domain/model/kernel"
)

// TravelEstimate is the externally sourced part of a workload estimate.
type TravelEstimate struct {
	MinutesToMove         int
	MinutesToWaitCustomer int
}

// TravelEstimator prices the trip from a shop to a set of destination building codes.
type TravelEstimator interface {
	Estimate(ctx context.Context, shopID kernel.UUID, destinations []string) (TravelEstimate, error)
}
