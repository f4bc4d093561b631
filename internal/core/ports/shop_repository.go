package ports

import (
	"context"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/shop"
)

// ShopRepository stores shops. Get and GetForUpdate return errs.ObjectNotFoundError for
// unknown ids.
type ShopRepository interface {
	Add(ctx context.Context, aggregate *shop.Shop) error
	Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error)

	// GetForUpdate locks the shop row. Self-delivery batches serialize on it the way staff
	// batches serialize on the staff row.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*shop.Shop, error)
}
