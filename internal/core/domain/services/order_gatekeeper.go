package services

import (
	"time"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/order"
)

// PackageRequest is one package of a batch as submitted by the shop: which orders to group
// and, optionally, which staff member delivers them. A nil StaffID means self-delivery.
type PackageRequest struct {
	OrderIDs []kernel.UUID
	StaffID  *kernel.UUID
}

// AdmittedPackage is a request whose orders all passed the gatekeeper.
type AdmittedPackage struct {
	Orders    []*order.Order
	StaffID   *kernel.UUID
	TimeFrame kernel.TimeFrame
}

// OrderGatekeeper decides whether the orders of a batch may be grouped into packages.
//
// Checks run per referenced order in request order and stop at the first failure:
// not found under the acting shop, not Preparing, not due today, already packaged.
// Once every order is admitted, each package's reference frame is the frame of its first
// order and every order of the batch that differs from its package's reference is reported
// together in one MixedTimeFrame error.
type OrderGatekeeper struct{}

func NewOrderGatekeeper() OrderGatekeeper {
	return OrderGatekeeper{}
}

// Admit validates requests against the orders loaded for the acting shop. loaded may
// contain fewer orders than requested; missing ones are reported as not found.
func (OrderGatekeeper) Admit(
	shopID kernel.UUID,
	today time.Time,
	requests []PackageRequest,
	loaded []*order.Order,
) ([]AdmittedPackage, error) {
	byID := make(map[kernel.UUID]*order.Order, len(loaded))
	for _, o := range loaded {
		byID[o.ID()] = o
	}

	seen := make(map[kernel.UUID]struct{})
	admitted := make([]AdmittedPackage, 0, len(requests))
	for _, req := range requests {
		orders := make([]*order.Order, 0, len(req.OrderIDs))
		for _, id := range req.OrderIDs {
			if _, dup := seen[id]; dup {
				return nil, NewDuplicateOrderInBatchError(id)
			}
			seen[id] = struct{}{}

			o, err := admitOrder(shopID, today, id, byID[id])
			if err != nil {
				return nil, err
			}
			orders = append(orders, o)
		}
		admitted = append(admitted, AdmittedPackage{Orders: orders, StaffID: req.StaffID})
	}

	var (
		mismatched []kernel.UUID
		reference  kernel.TimeFrame
	)
	for i := range admitted {
		if len(admitted[i].Orders) == 0 {
			continue
		}
		frame := admitted[i].Orders[0].TimeFrame()
		admitted[i].TimeFrame = frame
		for _, o := range admitted[i].Orders[1:] {
			if o.TimeFrame().Equals(frame) {
				continue
			}
			if len(mismatched) == 0 {
				reference = frame
			}
			mismatched = append(mismatched, o.ID())
		}
	}
	if len(mismatched) > 0 {
		return nil, NewMixedTimeFrameError(mismatched, reference)
	}

	return admitted, nil
}

func admitOrder(shopID kernel.UUID, today time.Time, id kernel.UUID, o *order.Order) (*order.Order, error) {
	if o == nil || !o.BelongsTo(shopID) {
		return nil, NewOrderNotFoundError(id)
	}
	if o.Status() != order.Preparing {
		return nil, NewOrderWrongStatusError(id, o.Status())
	}
	if !kernel.SameBusinessDate(o.IntendedReceiveDate(), today) {
		return nil, NewWrongDeliveryDateError(id, o.IntendedReceiveDate())
	}
	if o.IsPackaged() {
		return nil, NewAlreadyPackagedError(id)
	}
	return o, nil
}
