package ports

import (
	"context"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for delivery staff.
type StaffRepository interface {
	Add(ctx context.Context, aggregate *staff.Staff) error
	Update(ctx context.Context, aggregate *staff.Staff) error
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)

	// GetForShop loads and locks a staff member of shopID. A member of another shop is
	// reported as not found.
	GetForShop(ctx context.Context, shopID, id kernel.UUID) (*staff.Staff, error)

	// GetAllBusyWithoutActivePackage lists Busy members no Created or Delivering package
	// points at any more.
	GetAllBusyWithoutActivePackage(ctx context.Context) ([]*staff.Staff, error)
}
