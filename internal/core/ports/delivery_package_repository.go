package ports

import (
	"context"
	"time"

	"shopdelivery/internal/core/domain/model/deliverypackage"
	"shopdelivery/internal/core/domain/model/kernel"
)

// DeliveryPackageRepository stores packages together with their ordered order list.
type DeliveryPackageRepository interface {
	// Add fails with deliverypackage.ErrSlotAlreadyTaken when another active package of
	// the same fulfiller already covers the date and frame.
	Add(ctx context.Context, aggregate *deliverypackage.DeliveryPackage) error
	Get(ctx context.Context, id kernel.UUID) (*deliverypackage.DeliveryPackage, error)

	// ListByFulfillerOnDate returns every package of the fulfiller on the business date,
	// cancelled ones included.
	ListByFulfillerOnDate(
		ctx context.Context,
		fulfiller deliverypackage.Fulfiller,
		date time.Time,
	) ([]*deliverypackage.DeliveryPackage, error)
}
