// Package orderrepo persists the order aggregate. Orders are written by the checkout flow
// and read by the packaging engine, which also stamps the package back-reference.
package orderrepo

import (
	"shopdelivery/internal/adapters/out/postgres/columns"
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO is the orders row. Packaging reads orders of one shop on one date, hence the
// composite index.
type OrderDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShopID              uuid.UUID       `gorm:"type:uuid;not null;index:ix_orders_shop_date,priority:1"`
	IntendedReceiveDate datatypes.Date  `gorm:"not null;index:ix_orders_shop_date,priority:2"`
	StartTime           int             `gorm:"type:smallint;not null"`
	EndTime             int             `gorm:"type:smallint;not null"`
	TotalWeight         decimal.Decimal `gorm:"type:numeric(10,3);not null"`
	Destination         string          `gorm:"type:varchar(64)"`
	Status              int             `gorm:"not null"`
	DeliveryPackageID   *uuid.UUID      `gorm:"type:uuid;index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var packageID *uuid.UUID
	if id := aggregate.DeliveryPackageID(); id != nil {
		raw := id.Bytes()
		packageID = &raw
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		ShopID:              aggregate.ShopID().Bytes(),
		IntendedReceiveDate: columns.Date(aggregate.IntendedReceiveDate()),
		StartTime:           aggregate.TimeFrame().Start(),
		EndTime:             aggregate.TimeFrame().End(),
		TotalWeight:         aggregate.TotalWeight().Decimal(),
		Destination:         aggregate.Destination(),
		Status:              int(aggregate.Status()),
		DeliveryPackageID:   packageID,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}
	packageID, err := columns.OptionalUUID(dto.DeliveryPackageID)
	if err != nil {
		return nil, err
	}
	frame, err := kernel.NewTimeFrame(dto.StartTime, dto.EndTime)
	if err != nil {
		return nil, err
	}
	weight, err := kernel.NewWeight(dto.TotalWeight)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		shopID,
		columns.BusinessDate(dto.IntendedReceiveDate),
		frame,
		weight,
		dto.Destination,
		order.Status(dto.Status),
		packageID,
	)
}
