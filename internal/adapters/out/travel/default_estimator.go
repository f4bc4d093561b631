// Package travel supplies the travel part of a workload estimate: minutes to reach the
// destinations of a package and minutes spent handing orders over.
package travel

import (
	"context"
	"fmt"
	"strings"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/ports"
	"shopdelivery/internal/pkg/errs"
)

var _ ports.TravelEstimator = (*DefaultEstimator)(nil)

// DefaultEstimator prices every trip with configured constants. Moving costs the same for
// any set of buildings; waiting is paid once per distinct building.
type DefaultEstimator struct {
	minutesToMove         int
	minutesToWaitCustomer int
}

func NewDefaultEstimator(minutesToMove, minutesToWaitCustomer int) (*DefaultEstimator, error) {
	if minutesToMove < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"minutesToMove", fmt.Errorf("%d is negative", minutesToMove))
	}
	if minutesToWaitCustomer < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"minutesToWaitCustomer", fmt.Errorf("%d is negative", minutesToWaitCustomer))
	}

	return &DefaultEstimator{
		minutesToMove:         minutesToMove,
		minutesToWaitCustomer: minutesToWaitCustomer,
	}, nil
}

func (e *DefaultEstimator) Estimate(_ context.Context, shopID kernel.UUID, destinations []string) (ports.TravelEstimate, error) {
	if err := shopID.Validate(); err != nil {
		return ports.TravelEstimate{}, err
	}

	stops := len(distinct(destinations))
	if stops == 0 {
		stops = 1
	}

	return ports.TravelEstimate{
		MinutesToMove:         e.minutesToMove,
		MinutesToWaitCustomer: e.minutesToWaitCustomer * stops,
	}, nil
}

// distinct trims building codes and drops blanks and repeats, keeping first-seen order.
func distinct(destinations []string) []string {
	seen := make(map[string]struct{}, len(destinations))
	out := make([]string, 0, len(destinations))
	for _, d := range destinations {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
