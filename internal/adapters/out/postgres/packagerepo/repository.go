package packagerepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopdelivery/internal/adapters/out/postgres/columns"
	"shopdelivery/internal/core/domain/model/deliverypackage"
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormDeliveryPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryPackageRepository {
	return &GormDeliveryPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the package together with its order list. A second active package for the
// same fulfiller slot fails with deliverypackage.ErrSlotAlreadyTaken.
func (r *GormDeliveryPackageRepository) Add(ctx context.Context, aggregate *deliverypackage.DeliveryPackage) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if columns.IsUniqueViolation(err, SlotConstraint) {
			return fmt.Errorf("%w: %s on %s %s",
				deliverypackage.ErrSlotAlreadyTaken,
				aggregate.Fulfiller(),
				aggregate.DeliveryDate().Format(time.DateOnly),
				aggregate.TimeFrame().Label(),
			)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryPackageRepository) Get(ctx context.Context, id kernel.UUID) (*deliverypackage.DeliveryPackage, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryPackageDTO
	if err := r.withOrders(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryPackage", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDeliveryPackageRepository) ListByFulfillerOnDate(
	ctx context.Context,
	fulfiller deliverypackage.Fulfiller,
	date time.Time,
) ([]*deliverypackage.DeliveryPackage, error) {
	if err := fulfiller.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryPackageDTO
	err := r.withOrders(ctx).
		Where("fulfiller_kind = ? AND fulfiller_id = ? AND delivery_date = ?",
			int(fulfiller.Kind()), fulfiller.ID().Bytes(), columns.Date(date)).
		Order("start_time").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	packages := make([]*deliverypackage.DeliveryPackage, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}

	return packages, nil
}

func (r *GormDeliveryPackageRepository) withOrders(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Orders", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
