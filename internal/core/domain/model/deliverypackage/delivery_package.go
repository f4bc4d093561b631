package deliverypackage

import (
	"errors"
	"fmt"
	"time"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/order"
	"shopdelivery/internal/pkg/errs"
	"shopdelivery/internal/pkg/guard"
)

var (
	ErrPackageIsNotConstructed = errors.New("DeliveryPackage must be created via NewDeliveryPackage constructor")
	ErrPackageHasNoOrders      = errs.NewValueIsRequiredError("orders")
	ErrOrdersSpanTimeFrames    = errors.New("orders of one package must share the same time frame")

	// ErrSlotAlreadyTaken is reported by storage when another active package already holds
	// the fulfiller's slot.
	ErrSlotAlreadyTaken = errors.New("fulfiller slot is already taken")
)

// DeliveryPackage binds the orders of one operating slot on one day to exactly one
// fulfiller.
//
// Invariants:
//   - at least one order
//   - every order shares the package's time frame
//   - exactly one fulfiller, staff or shop
type DeliveryPackage struct {
	id           kernel.UUID
	deliveryDate time.Time
	timeFrame    kernel.TimeFrame
	status       Status
	fulfiller    Fulfiller
	orderIDs     []kernel.UUID
	guard        guard.ConstructorGuard
}

// NewDeliveryPackage creates a Created package and attaches every order to it. Nothing is
// attached unless all orders can be attached.
func NewDeliveryPackage(
	id kernel.UUID,
	deliveryDate time.Time,
	fulfiller Fulfiller,
	orders []*order.Order,
) (*DeliveryPackage, error) {
	if err := errors.Join(id.Validate(), fulfiller.Validate(), validateDate(deliveryDate)); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrPackageHasNoOrders
	}

	frame := orders[0].TimeFrame()
	seen := make(map[kernel.UUID]struct{}, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if !o.TimeFrame().Equals(frame) {
			return nil, fmt.Errorf("%w: order %s has %s, package has %s",
				ErrOrdersSpanTimeFrames, o.ID(), o.TimeFrame().Label(), frame.Label())
		}
		if _, dup := seen[o.ID()]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("orders", fmt.Errorf("order %s listed twice", o.ID()))
		}
		seen[o.ID()] = struct{}{}
		if err := o.Status().ValidatePackageable(); err != nil {
			return nil, err
		}
		if o.IsPackaged() {
			return nil, order.ErrOrderIsAlreadyPackaged
		}
	}

	p := &DeliveryPackage{
		id:           id,
		deliveryDate: kernel.BusinessDate(deliveryDate),
		timeFrame:    frame,
		status:       Created,
		fulfiller:    fulfiller,
		orderIDs:     make([]kernel.UUID, 0, len(orders)),
		guard:        guard.NewConstructorGuard(),
	}
	for _, o := range orders {
		if err := o.AttachToPackage(id); err != nil {
			return nil, err
		}
		p.orderIDs = append(p.orderIDs, o.ID())
	}

	return p, nil
}

// RestoreDeliveryPackage rebuilds a package from storage.
func RestoreDeliveryPackage(
	id kernel.UUID,
	deliveryDate time.Time,
	timeFrame kernel.TimeFrame,
	status Status,
	fulfiller Fulfiller,
	orderIDs []kernel.UUID,
) (*DeliveryPackage, error) {
	if err := errors.Join(
		id.Validate(),
		validateDate(deliveryDate),
		timeFrame.Validate(),
		status.Validate(),
		fulfiller.Validate(),
	); err != nil {
		return nil, err
	}
	if len(orderIDs) == 0 {
		return nil, ErrPackageHasNoOrders
	}

	ids := make([]kernel.UUID, len(orderIDs))
	copy(ids, orderIDs)

	return &DeliveryPackage{
		id:           id,
		deliveryDate: kernel.BusinessDate(deliveryDate),
		timeFrame:    timeFrame,
		status:       status,
		fulfiller:    fulfiller,
		orderIDs:     ids,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (p *DeliveryPackage) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

func (p *DeliveryPackage) ID() kernel.UUID {
	return p.id
}

func (p *DeliveryPackage) DeliveryDate() time.Time {
	return p.deliveryDate
}

func (p *DeliveryPackage) TimeFrame() kernel.TimeFrame {
	return p.timeFrame
}

func (p *DeliveryPackage) Status() Status {
	return p.status
}

func (p *DeliveryPackage) Fulfiller() Fulfiller {
	return p.fulfiller
}

// OrderIDs returns a copy of the member order ids in attach order.
func (p *DeliveryPackage) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(p.orderIDs))
	copy(ids, p.orderIDs)
	return ids
}

func (p *DeliveryPackage) OrderCount() int {
	return len(p.orderIDs)
}

// Occupies reports whether the package books fulfiller f for frame on the given date.
// Only cancelled packages free the slot.
func (p *DeliveryPackage) Occupies(f Fulfiller, date time.Time, frame kernel.TimeFrame) bool {
	return p.status != Cancelled &&
		p.fulfiller.Equals(f) &&
		kernel.SameBusinessDate(p.deliveryDate, date) &&
		p.timeFrame.Equals(frame)
}

func validateDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	return nil
}
