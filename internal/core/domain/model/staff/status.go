package staff

import (
	"fmt"

	"shopdelivery/internal/pkg/errs"
)

// Status is the availability of a delivery staff member.
type Status int

const (
	Unknown Status = iota
	// Available staff hold no active delivery package.
	Available
	// Busy staff hold at least one Created or Delivering package.
	Busy
)

func (s Status) Validate() error {
	if s != Available && s != Busy {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid staff status", s))
	}
	return nil
}

func (s Status) String() string {
	switch s {
	case Available:
		return "Available"
	case Busy:
		return "Busy"
	case Unknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}
