// Package shoprepo persists shops. A shop row doubles as the lock self-delivery batches
// serialize on.
package shoprepo

import (
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/shop"

	"github.com/google/uuid"
)

type ShopDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerAccountID uuid.UUID `gorm:"type:uuid;not null"`
	Name           string    `gorm:"type:varchar(255);not null"`
}

func (ShopDTO) TableName() string {
	return "shops"
}

func fromDomain(aggregate *shop.Shop) ShopDTO {
	return ShopDTO{
		ID:             aggregate.ID().Bytes(),
		OwnerAccountID: aggregate.OwnerAccountID().Bytes(),
		Name:           aggregate.Name(),
	}
}

func toDomain(dto ShopDTO) (*shop.Shop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerAccountID[:])
	if err != nil {
		return nil, err
	}
	return shop.NewShop(id, ownerID, dto.Name)
}
