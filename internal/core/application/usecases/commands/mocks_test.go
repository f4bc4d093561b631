package commands_test

import (
	"context"
	"time"

	"shopdelivery/internal/core/application/usecases/commands"
	"shopdelivery/internal/core/domain/model/deliverypackage"
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/order"
	"shopdelivery/internal/core/domain/model/shop"
	"shopdelivery/internal/core/domain/model/staff"
	"shopdelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetManyForShop(
	ctx context.Context,
	shopID kernel.UUID,
	ids []kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, shopID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Add(ctx context.Context, s *staff.Staff) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStaffRepository) Update(ctx context.Context, s *staff.Staff) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}

func (m *MockStaffRepository) GetForShop(ctx context.Context, shopID, id kernel.UUID) (*staff.Staff, error) {
	args := m.Called(ctx, shopID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}

func (m *MockStaffRepository) GetAllBusyWithoutActivePackage(ctx context.Context) ([]*staff.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*staff.Staff), args.Error(1)
}

type MockShopRepository struct{ mock.Mock }

func (m *MockShopRepository) Add(ctx context.Context, s *shop.Shop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShopRepository) Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *MockShopRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

type MockDeliveryPackageRepository struct{ mock.Mock }

func (m *MockDeliveryPackageRepository) Add(ctx context.Context, p *deliverypackage.DeliveryPackage) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockDeliveryPackageRepository) Get(
	ctx context.Context,
	id kernel.UUID,
) (*deliverypackage.DeliveryPackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliverypackage.DeliveryPackage), args.Error(1)
}

func (m *MockDeliveryPackageRepository) ListByFulfillerOnDate(
	ctx context.Context,
	f deliverypackage.Fulfiller,
	date time.Time,
) ([]*deliverypackage.DeliveryPackage, error) {
	args := m.Called(ctx, f, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*deliverypackage.DeliveryPackage), args.Error(1)
}

// MockUoW satisfies every unit of work shape of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StaffRepository() ports.StaffRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffRepository)
}

func (m *MockUoW) ShopRepository() ports.ShopRepository {
	args := m.Called()
	return args.Get(0).(ports.ShopRepository)
}

func (m *MockUoW) DeliveryPackageRepository() ports.DeliveryPackageRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryPackageRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStaffUoWFactory struct{ mock.Mock }

func (m *MockStaffUoWFactory) Create() commands.StaffUoW {
	args := m.Called()
	return args.Get(0).(commands.StaffUoW)
}

type MockShopUoWFactory struct{ mock.Mock }

func (m *MockShopUoWFactory) Create() commands.ShopUoW {
	args := m.Called()
	return args.Get(0).(commands.ShopUoW)
}

type MockNotificationFactory struct{ mock.Mock }

func (m *MockNotificationFactory) BuildAssignmentNotification(
	p *deliverypackage.DeliveryPackage,
	assignee *staff.Staff,
	owner *shop.Shop,
) ports.Notification {
	args := m.Called(p, assignee, owner)
	return args.Get(0).(ports.Notification)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Dispatch(ctx context.Context, notifications []ports.Notification) error {
	args := m.Called(ctx, notifications)
	return args.Error(0)
}
