package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/pkg/errs"
	"shopdelivery/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder
	// or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsAlreadyPackaged is returned by AttachToPackage when the order already
	// references a delivery package.
	ErrOrderIsAlreadyPackaged = errors.New("order already belongs to a delivery package")
)

// Order is a customer purchase as seen by the packaging engine: which shop prepares it,
// for which date and operating slot, how heavy it is and which package carries it.
//
// Invariants:
//   - id and shopID are valid identifiers
//   - the time frame is a valid (start < end) HHmm pair
//   - total weight is non-negative
//   - an order belongs to at most one delivery package, and only once it was prepared
type Order struct {
	id                  kernel.UUID
	shopID              kernel.UUID
	intendedReceiveDate time.Time
	timeFrame           kernel.TimeFrame
	totalWeight         kernel.Weight

	// destination is the building code the order is delivered to; it feeds travel estimates.
	destination string

	status            Status
	deliveryPackageID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewOrder registers a freshly checked-out order in Pending status without a package.
//
// Example:
//
//	frame, _ := kernel.NewTimeFrame(900, 1000)
//	weight, _ := kernel.NewWeightFromFloat(2)
//	o, err := order.NewOrder(kernel.NewUUID(), shopID, clock.Today(), frame, weight, "B2")
func NewOrder(
	id kernel.UUID,
	shopID kernel.UUID,
	intendedReceiveDate time.Time,
	timeFrame kernel.TimeFrame,
	totalWeight kernel.Weight,
	destination string,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setShopID(shopID),
		o.setIntendedReceiveDate(intendedReceiveDate),
		o.setTimeFrame(timeFrame),
		o.setDestination(destination),
	); err != nil {
		return nil, err
	}
	o.totalWeight = totalWeight

	return o, nil
}

// RestoreOrder rebuilds an order from storage, checking that status and package
// membership agree.
func RestoreOrder(
	id kernel.UUID,
	shopID kernel.UUID,
	intendedReceiveDate time.Time,
	timeFrame kernel.TimeFrame,
	totalWeight kernel.Weight,
	destination string,
	status Status,
	deliveryPackageID *kernel.UUID,
) (*Order, error) {
	o, err := NewOrder(id, shopID, intendedReceiveDate, timeFrame, totalWeight, destination)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHavePackage(deliveryPackageID != nil); err != nil {
		return nil, err
	}
	if deliveryPackageID != nil {
		if err = deliveryPackageID.Validate(); err != nil {
			return nil, err
		}
		packageID := *deliveryPackageID
		o.deliveryPackageID = &packageID
	}
	o.status = status

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ShopID() kernel.UUID {
	return o.shopID
}

// IntendedReceiveDate is midnight of the business date the customer expects the order.
func (o *Order) IntendedReceiveDate() time.Time {
	return o.intendedReceiveDate
}

func (o *Order) TimeFrame() kernel.TimeFrame {
	return o.timeFrame
}

func (o *Order) TotalWeight() kernel.Weight {
	return o.totalWeight
}

func (o *Order) Destination() string {
	return o.destination
}

func (o *Order) Status() Status {
	return o.status
}

// DeliveryPackageID returns nil while the order is not packaged.
func (o *Order) DeliveryPackageID() *kernel.UUID {
	return o.deliveryPackageID
}

func (o *Order) IsPackaged() bool {
	return o.deliveryPackageID != nil
}

// BelongsTo reports whether the order is prepared by the given shop.
func (o *Order) BelongsTo(shopID kernel.UUID) bool {
	return o.shopID.IsEqual(shopID)
}

// Confirm moves a Pending order to Confirmed.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Prepare moves a Confirmed order to Preparing, which makes it packageable.
func (o *Order) Prepare() error {
	newStatus, err := o.status.Prepare()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// AttachToPackage records membership in a delivery package. The order must be Preparing
// and not yet packaged; the status itself does not change until the package departs.
func (o *Order) AttachToPackage(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	if err := o.status.ValidatePackageable(); err != nil {
		return err
	}
	if o.deliveryPackageID != nil {
		return ErrOrderIsAlreadyPackaged
	}

	o.deliveryPackageID = &packageID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shopID", err)
	}
	o.shopID = shopID
	return nil
}

func (o *Order) setIntendedReceiveDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("intendedReceiveDate")
	}
	o.intendedReceiveDate = kernel.BusinessDate(date)
	return nil
}

func (o *Order) setTimeFrame(frame kernel.TimeFrame) error {
	if err := frame.Validate(); err != nil {
		return err
	}
	o.timeFrame = frame
	return nil
}

func (o *Order) setDestination(destination string) error {
	destination = strings.TrimSpace(destination)
	if len(destination) > 64 {
		return errs.NewValueIsInvalidErrorWithCause("destination", fmt.Errorf("%d characters is longer than 64", len(destination)))
	}
	o.destination = destination
	return nil
}
