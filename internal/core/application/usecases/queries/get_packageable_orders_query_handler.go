package queries

import (
	"context"
	"time"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetPackageableOrdersQueryHandler struct {
	db    *gorm.DB
	clock kernel.BusinessClock
}

func NewGetPackageableOrdersQueryHandler(db *gorm.DB, clock kernel.BusinessClock) GetPackageableOrdersQueryHandler {
	return GetPackageableOrdersQueryHandler{db: db, clock: clock}
}

// Handle returns the orders grouped by time frame: sorted by start, end, then id.
func (h GetPackageableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPackageableOrdersQuery,
) ([]GetPackageableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPackageableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			start_time,
			end_time,
			total_weight,
			destination
		FROM orders
		WHERE shop_id = ?
			AND intended_receive_date = CAST(? AS date)
			AND status = ?
			AND delivery_package_id IS NULL
		ORDER BY start_time, end_time, id
	`, query.ShopID().Bytes(), h.clock.Today().Format(time.DateOnly), int(order.Preparing)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			start, end int
			kg         decimal.Decimal
			resp       GetPackageableOrdersQueryResponse
		)
		if err = rows.Scan(&id, &start, &end, &kg, &resp.Destination); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		frame, frameErr := kernel.NewTimeFrame(start, end)
		if frameErr != nil {
			return nil, frameErr
		}
		resp.TimeFrame = frame

		weight, weightErr := kernel.NewWeight(kg)
		if weightErr != nil {
			return nil, weightErr
		}
		resp.Weight = weight

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
