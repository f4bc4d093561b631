package deliverypackage

import (
	"fmt"

	"shopdelivery/internal/pkg/errs"
)

// Status is the lifecycle of a package. Packaging only ever creates packages; the later
// states are set by delivery tracking. Every status except Cancelled keeps the fulfiller
// slot booked.
type Status int

const (
	Unknown Status = iota
	Created
	Delivering
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Created:    "Created",
		Delivering: "Delivering",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid package status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the package still occupies its fulfiller.
func (s Status) IsActive() bool {
	return s == Created || s == Delivering
}
