package queries

import (
	"errors"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/staff"
	"shopdelivery/internal/pkg/guard"
)

var ErrGetDeliveryStaffQueryIsNotConstructed = errors.New(
	"GetDeliveryStaffQuery must be created via NewGetDeliveryStaffQuery constructor",
)

// GetDeliveryStaffQuery lists the delivery staff of one shop with their availability.
type GetDeliveryStaffQuery struct {
	shopID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetDeliveryStaffQuery(shopID kernel.UUID) (GetDeliveryStaffQuery, error) {
	if err := shopID.Validate(); err != nil {
		return GetDeliveryStaffQuery{}, err
	}
	return GetDeliveryStaffQuery{shopID: shopID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryStaffQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStaffQueryIsNotConstructed)
}

func (q GetDeliveryStaffQuery) ShopID() kernel.UUID {
	return q.shopID
}

// GetDeliveryStaffQueryResponse is one staff member. ActivePackages counts Created and
// Delivering packages.
type GetDeliveryStaffQueryResponse struct {
	ID             kernel.UUID
	FullName       string
	Phone          string
	Status         staff.Status
	ActivePackages int
}
