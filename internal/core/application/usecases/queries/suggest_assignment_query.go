package queries

import (
	"errors"
	"fmt"

	"shopdelivery/internal/core/domain/model/deliverypackage"
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/order"
	"shopdelivery/internal/core/domain/model/staff"
	"shopdelivery/internal/core/domain/services"
	"shopdelivery/internal/pkg/errs"
	"shopdelivery/internal/pkg/guard"
)

var ErrSuggestAssignmentQueryIsNotConstructed = errors.New(
	"SuggestAssignmentQuery must be created via NewSuggestAssignmentQuery constructor",
)

// SuggestAssignmentQuery asks which fulfiller should take the next package of a slot.
// An empty staff list means every staff member of the shop.
//
// Example:
//
//	query, err := NewSuggestAssignmentQuery(shopID, 900, 1000, nil)
//	views, err := handler.Handle(ctx, query)
//	// views[0] carries the lightest current task load
type SuggestAssignmentQuery struct {
	shopID    kernel.UUID
	timeFrame kernel.TimeFrame
	staffIDs  []kernel.UUID
	guard     guard.ConstructorGuard
}

func NewSuggestAssignmentQuery(
	shopID kernel.UUID,
	startTime, endTime int,
	staffIDs []kernel.UUID,
) (SuggestAssignmentQuery, error) {
	frame, frameErr := kernel.NewTimeFrame(startTime, endTime)

	var idErrs []error
	for i, id := range staffIDs {
		if err := id.Validate(); err != nil {
			idErrs = append(idErrs, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("staffIds[%d]", i), err))
		}
	}

	if err := errors.Join(shopID.Validate(), frameErr, errors.Join(idErrs...)); err != nil {
		return SuggestAssignmentQuery{}, err
	}

	ids := make([]kernel.UUID, len(staffIDs))
	copy(ids, staffIDs)

	return SuggestAssignmentQuery{
		shopID:    shopID,
		timeFrame: frame,
		staffIDs:  ids,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q SuggestAssignmentQuery) Validate() error {
	return q.guard.Validate(ErrSuggestAssignmentQueryIsNotConstructed)
}

func (q SuggestAssignmentQuery) ShopID() kernel.UUID {
	return q.shopID
}

func (q SuggestAssignmentQuery) TimeFrame() kernel.TimeFrame {
	return q.timeFrame
}

func (q SuggestAssignmentQuery) StaffIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(q.staffIDs))
	copy(ids, q.staffIDs)
	return ids
}

// OrderCounts breaks down the orders of a package by delivery progress.
type OrderCounts struct {
	Total      int
	Waiting    int
	Delivering int
	Successful int
	Failed     int
}

func (c *OrderCounts) add(status order.Status) {
	c.Total++
	switch status {
	case order.Preparing:
		c.Waiting++
	case order.Delivering:
		c.Delivering++
	case order.Delivered:
		c.Successful++
	case order.FailDelivery:
		c.Failed++
	default:
	}
}

// DestinationOrders counts the package orders bound for one destination.
type DestinationOrders struct {
	Destination string
	Orders      OrderCounts
}

// SuggestAssignmentQueryResponse is the workload of one candidate fulfiller in the slot.
// StaffStatus is Unknown on the shop's self-delivery row. PackageID is nil when the
// fulfiller holds nothing in the slot yet.
type SuggestAssignmentQueryResponse struct {
	FulfillerKind deliverypackage.FulfillerKind
	FulfillerID   kernel.UUID
	Name          string
	StaffStatus   staff.Status
	PackageID     *kernel.UUID
	Orders        OrderCounts
	// Destinations lists per-destination counts in first-seen package order. Orders
	// without a destination count only toward Orders.
	Destinations []DestinationOrders
	Workload     services.WorkloadView
}
