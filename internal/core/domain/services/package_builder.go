package services

import (
	"errors"
	"time"

	"shopdelivery/internal/core/domain/model/deliverypackage"
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/order"
	"shopdelivery/internal/core/domain/model/staff"
)

var ErrAssigneeMismatch = errors.New("assignee does not match the package fulfiller")

// BuiltPackage is a package with every aggregate it changed, ready to be written.
type BuiltPackage struct {
	Package *deliverypackage.DeliveryPackage
	Orders  []*order.Order
	Staff   *staff.Staff
	Weight  kernel.Weight
}

// PackageBuilder turns an admitted, conflict-free request into aggregates in memory.
// It performs no I/O; callers persist the result in one unit of work.
type PackageBuilder struct{}

func NewPackageBuilder() PackageBuilder {
	return PackageBuilder{}
}

// Build creates the package for today, attaches the orders and, for staff fulfillers,
// marks the assignee Busy. assignee must be nil for self-delivery.
func (PackageBuilder) Build(
	id kernel.UUID,
	today time.Time,
	fulfiller deliverypackage.Fulfiller,
	orders []*order.Order,
	assignee *staff.Staff,
) (BuiltPackage, error) {
	staffID, isStaff := fulfiller.StaffID()
	switch {
	case isStaff && (assignee == nil || !assignee.ID().IsEqual(staffID)):
		return BuiltPackage{}, ErrAssigneeMismatch
	case !isStaff && assignee != nil:
		return BuiltPackage{}, ErrAssigneeMismatch
	}

	p, err := deliverypackage.NewDeliveryPackage(id, today, fulfiller, orders)
	if err != nil {
		return BuiltPackage{}, err
	}

	var weight kernel.Weight
	for _, o := range orders {
		weight = weight.Add(o.TotalWeight())
	}

	if assignee != nil {
		assignee.Assign()
	}

	return BuiltPackage{Package: p, Orders: orders, Staff: assignee, Weight: weight}, nil
}
