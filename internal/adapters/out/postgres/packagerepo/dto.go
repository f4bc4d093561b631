// Package packagerepo persists delivery packages and their order lists.
//
// A partial unique index keeps at most one non-cancelled package per fulfiller, date and
// time frame. It is the storage-level guard against two batches that both passed the
// in-memory conflict check.
package packagerepo

import (
	"shopdelivery/internal/adapters/out/postgres/columns"
	"shopdelivery/internal/core/domain/model/deliverypackage"
	"shopdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SlotConstraint names the partial unique index over active fulfiller slots. The where
// clause hardcodes deliverypackage.Cancelled.
const SlotConstraint = "ux_delivery_packages_fulfiller_slot"

// DeliveryPackageDTO is one delivery_packages row. Status 4 in the index filter is
// deliverypackage.Cancelled.
type DeliveryPackageDTO struct {
	ID            uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	FulfillerKind int                       `gorm:"type:smallint;not null;uniqueIndex:ux_delivery_packages_fulfiller_slot,priority:1,where:status <> 4"`
	FulfillerID   uuid.UUID                 `gorm:"type:uuid;not null;uniqueIndex:ux_delivery_packages_fulfiller_slot,priority:2"`
	DeliveryDate  datatypes.Date            `gorm:"not null;uniqueIndex:ux_delivery_packages_fulfiller_slot,priority:3"`
	StartTime     int                       `gorm:"type:smallint;not null;uniqueIndex:ux_delivery_packages_fulfiller_slot,priority:4"`
	EndTime       int                       `gorm:"type:smallint;not null;uniqueIndex:ux_delivery_packages_fulfiller_slot,priority:5"`
	Status        int                       `gorm:"not null"`
	Orders        []DeliveryPackageOrderDTO `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
}

func (DeliveryPackageDTO) TableName() string {
	return "delivery_packages"
}

// DeliveryPackageOrderDTO keeps the member orders of a package in attach order.
type DeliveryPackageOrderDTO struct {
	PackageID uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position  int       `gorm:"type:smallint;not null"`
}

func (DeliveryPackageOrderDTO) TableName() string {
	return "delivery_package_orders"
}

func fromDomain(aggregate *deliverypackage.DeliveryPackage) DeliveryPackageDTO {
	id := aggregate.ID().Bytes()
	orders := make([]DeliveryPackageOrderDTO, 0, aggregate.OrderCount())
	for i, orderID := range aggregate.OrderIDs() {
		orders = append(orders, DeliveryPackageOrderDTO{
			PackageID: id,
			OrderID:   orderID.Bytes(),
			Position:  i,
		})
	}

	return DeliveryPackageDTO{
		ID:            id,
		FulfillerKind: int(aggregate.Fulfiller().Kind()),
		FulfillerID:   aggregate.Fulfiller().ID().Bytes(),
		DeliveryDate:  columns.Date(aggregate.DeliveryDate()),
		StartTime:     aggregate.TimeFrame().Start(),
		EndTime:       aggregate.TimeFrame().End(),
		Status:        int(aggregate.Status()),
		Orders:        orders,
	}
}

func toDomain(dto DeliveryPackageDTO) (*deliverypackage.DeliveryPackage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	fulfillerID, err := kernel.UUIDFromBytes(dto.FulfillerID[:])
	if err != nil {
		return nil, err
	}
	fulfiller, err := deliverypackage.RestoreFulfiller(deliverypackage.FulfillerKind(dto.FulfillerKind), fulfillerID)
	if err != nil {
		return nil, err
	}
	frame, err := kernel.NewTimeFrame(dto.StartTime, dto.EndTime)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(dto.Orders))
	for _, o := range dto.Orders {
		orderID, err := kernel.UUIDFromBytes(o.OrderID[:])
		if err != nil {
			return nil, err
		}
		orderIDs = append(orderIDs, orderID)
	}

	return deliverypackage.RestoreDeliveryPackage(
		id,
		columns.BusinessDate(dto.DeliveryDate),
		frame,
		deliverypackage.Status(dto.Status),
		fulfiller,
		orderIDs,
	)
}
