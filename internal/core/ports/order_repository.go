// Package ports defines the contracts between the packaging core and its adapters:
// repositories, the unit of work, notification delivery, travel estimates and messages.
package ports

import (
	"context"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and package membership of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetManyForShop loads the orders of shopID among ids and locks them for the rest of
	// the transaction. Unknown ids and orders of other shops are silently left out; the
	// caller decides how to report them.
	GetManyForShop(ctx context.Context, shopID kernel.UUID, ids []kernel.UUID) ([]*order.Order, error)
}
