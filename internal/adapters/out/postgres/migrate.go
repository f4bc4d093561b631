package postgres

import (
	"shopdelivery/internal/adapters/out/postgres/orderrepo"
	"shopdelivery/internal/adapters/out/postgres/packagerepo"
	"shopdelivery/internal/adapters/out/postgres/shoprepo"
	"shopdelivery/internal/adapters/out/postgres/staffrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns, in dependency-free order.
func Models() []any {
	return []any{
		&shoprepo.ShopDTO{},
		&staffrepo.StaffDTO{},
		&orderrepo.OrderDTO{},
		&packagerepo.DeliveryPackageDTO{},
		&packagerepo.DeliveryPackageOrderDTO{},
	}
}

// Migrate creates or updates the schema, including the partial unique index over
// fulfiller slots.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
