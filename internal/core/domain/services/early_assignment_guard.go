package services

import (
	"fmt"
	"time"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/order"
	"shopdelivery/internal/pkg/errs"
)

// EarlyAssignmentWarning is returned instead of performing an unconfirmed assignment that
// is submitted more than the warning window before the order's slot starts.
type EarlyAssignmentWarning struct {
	OrderID       kernel.UUID
	TimeFrame     kernel.TimeFrame
	Cutoff        time.Time
	RemainingWait time.Duration
}

// RemainingLabel renders the remaining wait as H:mm.
func (w EarlyAssignmentWarning) RemainingLabel() string {
	minutes := int(w.RemainingWait.Round(time.Minute) / time.Minute)
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// EarlyAssignmentGuard computes cutoff = slot start - window for the reference order.
type EarlyAssignmentGuard struct {
	window time.Duration
}

// NewEarlyAssignmentGuard takes how long before a slot starts packaging stops counting
// as early.
func NewEarlyAssignmentGuard(window time.Duration) (EarlyAssignmentGuard, error) {
	if window < 0 {
		return EarlyAssignmentGuard{}, errs.NewValueIsInvalidErrorWithCause("warningWindow", fmt.Errorf("%s is negative", window))
	}
	return EarlyAssignmentGuard{window: window}, nil
}

func (g EarlyAssignmentGuard) Window() time.Duration {
	return g.window
}

// Check returns a warning when now is before the cutoff of reference, nil otherwise.
func (g EarlyAssignmentGuard) Check(now time.Time, reference *order.Order) *EarlyAssignmentWarning {
	slotStart := reference.TimeFrame().StartOn(reference.IntendedReceiveDate())
	cutoff := slotStart.Add(-g.window)
	if !now.Before(cutoff) {
		return nil
	}

	return &EarlyAssignmentWarning{
		OrderID:       reference.ID(),
		TimeFrame:     reference.TimeFrame(),
		Cutoff:        cutoff,
		RemainingWait: cutoff.Sub(now),
	}
}
