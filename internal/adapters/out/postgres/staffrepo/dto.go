// Package staffrepo persists delivery staff members.
package staffrepo

import (
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

type StaffDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AccountID uuid.UUID `gorm:"type:uuid;not null"`
	FullName  string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(32)"`
	Status    int       `gorm:"not null"`
}

func (StaffDTO) TableName() string {
	return "delivery_staff"
}

func fromDomain(aggregate *staff.Staff) StaffDTO {
	return StaffDTO{
		ID:        aggregate.ID().Bytes(),
		ShopID:    aggregate.ShopID().Bytes(),
		AccountID: aggregate.AccountID().Bytes(),
		FullName:  aggregate.FullName(),
		Phone:     aggregate.Phone(),
		Status:    int(aggregate.Status()),
	}
}

func toDomain(dto StaffDTO) (*staff.Staff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}
	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	return staff.RestoreStaff(id, shopID, accountID, dto.FullName, dto.Phone, staff.Status(dto.Status))
}
