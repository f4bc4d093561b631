package queries

import (
	"context"

	"shopdelivery/internal/core/domain/model/deliverypackage"
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/staff"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetDeliveryStaffQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryStaffQueryHandler(db *gorm.DB) GetDeliveryStaffQueryHandler {
	return GetDeliveryStaffQueryHandler{db: db}
}

// Handle returns the shop's staff sorted by name.
func (h GetDeliveryStaffQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryStaffQuery,
) ([]GetDeliveryStaffQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	members := make([]GetDeliveryStaffQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.full_name,
			s.phone,
			s.status,
			COUNT(p.id) AS active_packages
		FROM delivery_staff s
		LEFT JOIN delivery_packages p
			ON p.fulfiller_kind = @staffKind
			AND p.fulfiller_id = s.id
			AND p.status IN @active
		WHERE s.shop_id = @shopID
		GROUP BY s.id, s.full_name, s.phone, s.status
		ORDER BY s.full_name, s.id
	`, map[string]any{
		"staffKind": int(deliverypackage.StaffFulfiller),
		"active":    []int{int(deliverypackage.Created), int(deliverypackage.Delivering)},
		"shopID":    query.ShopID().Bytes(),
	}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id     uuid.UUID
			member GetDeliveryStaffQueryResponse
			status int
		)
		if err = rows.Scan(&id, &member.FullName, &member.Phone, &status, &member.ActivePackages); err != nil {
			return nil, err
		}

		memberID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		member.ID = memberID
		member.Status = staff.Status(status)

		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
