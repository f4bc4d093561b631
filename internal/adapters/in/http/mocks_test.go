package http_test

import (
	"context"

	"shopdelivery/internal/core/application/usecases/commands"
	"shopdelivery/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockRegisterShopHandler struct{ mock.Mock }

func (m *MockRegisterShopHandler) Handle(ctx context.Context, cmd commands.RegisterShopCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockConfirmOrderHandler struct{ mock.Mock }

func (m *MockConfirmOrderHandler) Handle(ctx context.Context, cmd commands.ConfirmOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockPrepareOrderHandler struct{ mock.Mock }

func (m *MockPrepareOrderHandler) Handle(ctx context.Context, cmd commands.PrepareOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateDeliveryStaffHandler struct{ mock.Mock }

func (m *MockCreateDeliveryStaffHandler) Handle(ctx context.Context, cmd commands.CreateDeliveryStaffCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateDeliveryPackagesHandler struct{ mock.Mock }

func (m *MockCreateDeliveryPackagesHandler) Handle(
	ctx context.Context,
	cmd commands.CreateDeliveryPackagesCommand,
) (commands.CreateDeliveryPackagesResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateDeliveryPackagesResult), args.Error(1)
}

type MockGetDeliveryStaffHandler struct{ mock.Mock }

func (m *MockGetDeliveryStaffHandler) Handle(
	ctx context.Context,
	query queries.GetDeliveryStaffQuery,
) ([]queries.GetDeliveryStaffQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.GetDeliveryStaffQueryResponse), args.Error(1)
}

type MockGetPackageableOrdersHandler struct{ mock.Mock }

func (m *MockGetPackageableOrdersHandler) Handle(
	ctx context.Context,
	query queries.GetPackageableOrdersQuery,
) ([]queries.GetPackageableOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.GetPackageableOrdersQueryResponse), args.Error(1)
}

type MockSuggestAssignmentHandler struct{ mock.Mock }

func (m *MockSuggestAssignmentHandler) Handle(
	ctx context.Context,
	query queries.SuggestAssignmentQuery,
) ([]queries.SuggestAssignmentQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.SuggestAssignmentQueryResponse), args.Error(1)
}
