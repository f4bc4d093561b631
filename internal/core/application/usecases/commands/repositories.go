// Package commands contains the operations that change state: packaging orders, managing
// delivery staff and moving orders through preparation. Every handler validates its command,
// opens one unit of work and commits or rolls back as a whole.
package commands

import (
	"context"

	"shopdelivery/internal/core/ports"
)

// Unit of work interfaces are composed per handler so each one sees only the repositories
// it touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	ShopRepoFactory interface {
		ShopRepository() ports.ShopRepository
	}

	DeliveryPackageRepoFactory interface {
		DeliveryPackageRepository() ports.DeliveryPackageRepository
	}

	// OrderUoW serves commands that only change orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ShopRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StaffUoW serves commands that register or release delivery staff.
	StaffUoW interface {
		TxManager
		StaffRepoFactory
		ShopRepoFactory
	}

	StaffUoWFactory interface {
		Create() StaffUoW
	}

	ShopUoW interface {
		TxManager
		ShopRepoFactory
	}

	ShopUoWFactory interface {
		Create() ShopUoW
	}

	// UoW spans every aggregate touched when orders are packaged.
	//
	// Example:
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil {
	//	    return err
	//	}
	//	defer func() { _ = uow.Rollback(ctx) }()
	//
	//	orders, err := uow.OrderRepository().GetManyForShop(ctx, shopID, ids)
	//	// ... build packages in memory, then write them
	//	err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		StaffRepoFactory
		ShopRepoFactory
		DeliveryPackageRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
