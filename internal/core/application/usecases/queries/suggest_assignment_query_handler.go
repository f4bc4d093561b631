package queries

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"shopdelivery/internal/core/domain/model/deliverypackage"
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/order"
	"shopdelivery/internal/core/domain/model/staff"
	"shopdelivery/internal/core/domain/services"
	"shopdelivery/internal/core/ports"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SuggestAssignmentQueryHandler is read-only: it never locks and never writes.
type SuggestAssignmentQueryHandler struct {
	db        *gorm.DB
	clock     kernel.BusinessClock
	estimator services.WorkloadEstimator
	travel    ports.TravelEstimator
}

func NewSuggestAssignmentQueryHandler(
	db *gorm.DB,
	clock kernel.BusinessClock,
	estimator services.WorkloadEstimator,
	travel ports.TravelEstimator,
) SuggestAssignmentQueryHandler {
	return SuggestAssignmentQueryHandler{
		db:        db,
		clock:     clock,
		estimator: estimator,
		travel:    travel,
	}
}

// candidate accumulates the joined rows of one fulfiller.
type candidate struct {
	view    SuggestAssignmentQueryResponse
	weights []decimal.Decimal
}

func (c *candidate) addOrder(status order.Status, weight decimal.Decimal, destination string) {
	c.view.Orders.add(status)
	c.weights = append(c.weights, weight)
	if destination == "" {
		return
	}

	i := slices.IndexFunc(c.view.Destinations, func(d DestinationOrders) bool {
		return d.Destination == destination
	})
	if i < 0 {
		c.view.Destinations = append(c.view.Destinations, DestinationOrders{Destination: destination})
		i = len(c.view.Destinations) - 1
	}
	c.view.Destinations[i].Orders.add(status)
}

func (c *candidate) destinations() []string {
	names := make([]string, 0, len(c.view.Destinations))
	for _, d := range c.view.Destinations {
		names = append(names, d.Destination)
	}
	return names
}

// Handle returns one view per candidate sorted by ascending task load. Ties keep name
// order, staff before the shop row.
func (h SuggestAssignmentQueryHandler) Handle(
	ctx context.Context,
	query SuggestAssignmentQuery,
) ([]SuggestAssignmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	today := h.clock.Today()

	candidates, err := h.loadStaff(ctx, query, today)
	if err != nil {
		return nil, err
	}

	self, err := h.loadShop(ctx, query, today)
	if err != nil {
		return nil, err
	}
	if self != nil {
		candidates = append(candidates, self)
	}

	views := make([]SuggestAssignmentQueryResponse, 0, len(candidates))
	for _, c := range candidates {
		estimate := ports.TravelEstimate{}
		if c.view.Orders.Total > 0 {
			estimate, err = h.travel.Estimate(ctx, query.ShopID(), c.destinations())
			if err != nil {
				return nil, fmt.Errorf("estimate travel for %s: %w", c.view.FulfillerID, err)
			}
		}

		workload, err := h.estimator.Estimate(today, services.WorkloadInput{
			EndTime:               query.TimeFrame().End(),
			OrderWeights:          c.weights,
			MinutesToWaitCustomer: estimate.MinutesToWaitCustomer,
			MinutesToMove:         estimate.MinutesToMove,
		})
		if err != nil {
			return nil, err
		}
		c.view.Workload = workload
		views = append(views, c.view)
	}

	slices.SortStableFunc(views, func(a, b SuggestAssignmentQueryResponse) int {
		return a.Workload.CurrentTaskLoad.Cmp(b.Workload.CurrentTaskLoad)
	})

	return views, nil
}

func (h SuggestAssignmentQueryHandler) loadStaff(
	ctx context.Context,
	query SuggestAssignmentQuery,
	today time.Time,
) ([]*candidate, error) {
	args := h.slotArgs(query, today, deliverypackage.StaffFulfiller)

	filter := ""
	if ids := query.StaffIDs(); len(ids) > 0 {
		raw := make([]string, 0, len(ids))
		for _, id := range ids {
			raw = append(raw, id.String())
		}
		args["staffIDs"] = pq.Array(raw)
		filter = "AND s.id = ANY(CAST(@staffIDs AS uuid[]))"
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.full_name,
			s.status,
			p.id,
			o.status,
			o.total_weight,
			o.destination
		FROM delivery_staff s
		LEFT JOIN delivery_packages p
			ON p.fulfiller_kind = @kind
			AND p.fulfiller_id = s.id
			AND p.delivery_date = CAST(@date AS date)
			AND p.start_time = @start
			AND p.end_time = @end
			AND p.status <> @cancelled
		LEFT JOIN delivery_package_orders po ON po.package_id = p.id
		LEFT JOIN orders o ON o.id = po.order_id
		WHERE s.shop_id = @shopID `+filter+`
		ORDER BY s.full_name, s.id, po.position
	`, args).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]*candidate, 0)
	var current *candidate
	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			status    int
			packageID uuid.NullUUID
			line      orderLine
		)
		if err = rows.Scan(&id, &name, &status, &packageID, &line.status, &line.weight, &line.destination); err != nil {
			return nil, err
		}

		if current == nil || current.view.FulfillerID.Bytes() != id {
			memberID, idErr := kernel.UUIDFromBytes(id[:])
			if idErr != nil {
				return nil, idErr
			}
			current = &candidate{view: SuggestAssignmentQueryResponse{
				FulfillerKind: deliverypackage.StaffFulfiller,
				FulfillerID:   memberID,
				Name:          name,
				StaffStatus:   staff.Status(status),
			}}
			candidates = append(candidates, current)
		}

		if err = current.absorb(packageID, line); err != nil {
			return nil, err
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}

// loadShop returns the self-delivery row, or nil when the shop holds no package in the slot.
func (h SuggestAssignmentQueryHandler) loadShop(
	ctx context.Context,
	query SuggestAssignmentQuery,
	today time.Time,
) (*candidate, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sh.name,
			p.id,
			o.status,
			o.total_weight,
			o.destination
		FROM delivery_packages p
		JOIN shops sh ON sh.id = p.fulfiller_id
		JOIN delivery_package_orders po ON po.package_id = p.id
		JOIN orders o ON o.id = po.order_id
		WHERE p.fulfiller_kind = @kind
			AND p.fulfiller_id = @shopID
			AND p.delivery_date = CAST(@date AS date)
			AND p.start_time = @start
			AND p.end_time = @end
			AND p.status <> @cancelled
		ORDER BY po.position
	`, h.slotArgs(query, today, deliverypackage.ShopFulfiller)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var self *candidate
	for rows.Next() {
		var (
			name      string
			packageID uuid.NullUUID
			line      orderLine
		)
		if err = rows.Scan(&name, &packageID, &line.status, &line.weight, &line.destination); err != nil {
			return nil, err
		}

		if self == nil {
			self = &candidate{view: SuggestAssignmentQueryResponse{
				FulfillerKind: deliverypackage.ShopFulfiller,
				FulfillerID:   query.ShopID(),
				Name:          name,
				StaffStatus:   staff.Unknown,
			}}
		}
		if err = self.absorb(packageID, line); err != nil {
			return nil, err
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return self, nil
}

func (h SuggestAssignmentQueryHandler) slotArgs(
	query SuggestAssignmentQuery,
	today time.Time,
	kind deliverypackage.FulfillerKind,
) map[string]any {
	return map[string]any{
		"kind":      int(kind),
		"shopID":    query.ShopID().Bytes(),
		"date":      today.Format(time.DateOnly),
		"start":     query.TimeFrame().Start(),
		"end":       query.TimeFrame().End(),
		"cancelled": int(deliverypackage.Cancelled),
	}
}

// orderLine is the nullable order part of a joined row.
type orderLine struct {
	status      sql.NullInt32
	weight      decimal.NullDecimal
	destination sql.NullString
}

func (c *candidate) absorb(packageID uuid.NullUUID, line orderLine) error {
	if !packageID.Valid {
		return nil
	}
	if c.view.PackageID == nil {
		id, err := kernel.UUIDFromBytes(packageID.UUID[:])
		if err != nil {
			return err
		}
		c.view.PackageID = &id
	}
	if line.status.Valid {
		c.addOrder(order.Status(line.status.Int32), line.weight.Decimal, line.destination.String)
	}
	return nil
}
