package order

import (
	"fmt"

	"shopdelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions relevant to packaging:
//
//	Pending ──> Confirmed ──> Preparing ──> Delivering ──┬──> Delivered
//	   │            │             │                      └──> FailDelivery
//	   └────────────┴─────────────┴──> Cancelled
//
// Only Preparing orders without a package may be grouped into a delivery package.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Pending is the state right after checkout.
	Pending

	// Confirmed means the shop accepted the order.
	Confirmed

	// Preparing means the shop is cooking; the order is now packageable.
	Preparing

	// Delivering means the package holding the order left the shop.
	Delivering

	// Delivered is final and successful.
	Delivered

	// Cancelled is final.
	Cancelled

	// FailDelivery is final: the fulfiller could not hand the order over.
	FailDelivery
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		Pending:      "Pending",
		Confirmed:    "Confirmed",
		Preparing:    "Preparing",
		Delivering:   "Delivering",
		Delivered:    "Delivered",
		Cancelled:    "Cancelled",
		FailDelivery: "FailDelivery",
	}
}

// Validate rejects Unknown and values outside the enum, e.g. a corrupted status column.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidatePackageable reports whether an order in this status may join a package.
func (s Status) ValidatePackageable() error {
	if s != Preparing {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to package", s.String()),
		)
	}
	return nil
}

// ValidateCanHavePackage checks that the package back-reference agrees with the status:
// orders that were never prepared cannot sit in a package.
func (s Status) ValidateCanHavePackage(packaged bool) error {
	if packaged && (s == Pending || s == Confirmed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a delivery package", s.String()),
		)
	}
	if !packaged && (s == Delivering || s == Delivered || s == FailDelivery) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no delivery package", s.String()),
		)
	}
	return nil
}

// Confirm transitions Pending -> Confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}
	return Confirmed, nil
}

// Prepare transitions Confirmed -> Preparing.
func (s Status) Prepare() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to prepare", s.String()),
		)
	}
	return Preparing, nil
}
