package staffrepo

import (
	"context"
	"errors"

	"shopdelivery/internal/core/domain/model/deliverypackage"
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/staff"
	"shopdelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStaffRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormStaffRepository(db *gorm.DB, tracker aggregateTracker) *GormStaffRepository {
	return &GormStaffRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormStaffRepository) Add(ctx context.Context, aggregate *staff.Staff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormStaffRepository) Update(ctx context.Context, aggregate *staff.Staff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&StaffDTO{}).
		Where("id = ?", dto.ID).
		Select("full_name", "phone", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("staff", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormStaffRepository) GetForShop(ctx context.Context, shopID, id kernel.UUID) (*staff.Staff, error) {
	if err := errors.Join(shopID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto StaffDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND shop_id = ?", id.Bytes(), shopID.Bytes()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllBusyWithoutActivePackage skips rows locked by a packaging batch in flight: those
// members are about to get a package and must stay Busy.
func (r *GormStaffRepository) GetAllBusyWithoutActivePackage(ctx context.Context) ([]*staff.Staff, error) {
	var dtos []StaffDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ?", int(staff.Busy)).
		Where(`NOT EXISTS (
			SELECT 1 FROM delivery_packages p
			WHERE p.fulfiller_kind = ? AND p.fulfiller_id = delivery_staff.id AND p.status IN ?
		)`,
			int(deliverypackage.StaffFulfiller),
			[]int{int(deliverypackage.Created), int(deliverypackage.Delivering)},
		).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	members := make([]*staff.Staff, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		members = append(members, s)
	}

	return members, nil
}
