package queries_test

import (
	"context"
	"errors"
	"testing"

	"shopdelivery/internal/core/application/usecases/queries"
	"shopdelivery/internal/core/domain/model/deliverypackage"
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/order"
	"shopdelivery/internal/core/domain/model/shop"
	"shopdelivery/internal/core/domain/model/staff"
	"shopdelivery/internal/core/domain/services"
	"shopdelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockTravelEstimator struct {
	mock.Mock
}

func (m *MockTravelEstimator) Estimate(ctx context.Context, shopID kernel.UUID, destinations []string) (ports.TravelEstimate, error) {
	args := m.Called(ctx, shopID, destinations)
	return args.Get(0).(ports.TravelEstimate), args.Error(1)
}

type SuggestAssignmentQueryHandlerTestSuite struct {
	databaseSuite
	travel  *MockTravelEstimator
	handler queries.SuggestAssignmentQueryHandler

	owner *shop.Shop
	lan   *staff.Staff
	minh  *staff.Staff
}

func (suite *SuggestAssignmentQueryHandlerTestSuite) SetupTest() {
	suite.databaseSuite.SetupTest()

	estimator, err := services.NewWorkloadEstimator(5)
	suite.Require().NoError(err)
	suite.travel = new(MockTravelEstimator)
	suite.handler = queries.NewSuggestAssignmentQueryHandler(suite.db, suite.clock, estimator, suite.travel)

	suite.owner = suite.addShop("Corner Bakery")
	suite.lan = suite.addStaff(suite.owner.ID(), "Lan", staff.Busy)
	suite.minh = suite.addStaff(suite.owner.ID(), "Minh", staff.Available)
}

func (suite *SuggestAssignmentQueryHandlerTestSuite) TestHandle_LightestFulfillerFirst() {
	suite.addPackage(suite.owner.ID(), suite.staffFulfiller(suite.lan), 900, 1000, deliverypackage.Created,
		seededOrder{kg: 2, status: order.Preparing, destination: "B2"},
		seededOrder{kg: 3, status: order.Delivering, destination: "C1"},
		seededOrder{kg: 0.5, status: order.Delivered, destination: "B2"},
	)
	suite.travel.On("Estimate", mock.Anything, suite.owner.ID(), []string{"B2", "C1"}).
		Return(ports.TravelEstimate{MinutesToMove: 12, MinutesToWaitCustomer: 5}, nil).Once()

	result, err := suite.handler.Handle(suite.T().Context(), suite.query(nil))

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	idle := result[0]
	suite.Equal(suite.minh.ID(), idle.FulfillerID)
	suite.Equal(deliverypackage.StaffFulfiller, idle.FulfillerKind)
	suite.Equal(staff.Available, idle.StaffStatus)
	suite.Nil(idle.PackageID)
	suite.Equal(queries.OrderCounts{}, idle.Orders)
	suite.Empty(idle.Destinations)
	suite.Equal(1000, idle.Workload.SuggestedStartTime)
	suite.True(idle.Workload.CurrentTaskLoad.Decimal().IsZero())

	busy := result[1]
	suite.Equal(suite.lan.ID(), busy.FulfillerID)
	suite.Equal("Lan", busy.Name)
	suite.Equal(staff.Busy, busy.StaffStatus)
	suite.Require().NotNil(busy.PackageID)
	suite.Equal(queries.OrderCounts{Total: 3, Waiting: 1, Delivering: 1, Successful: 1}, busy.Orders)
	suite.Equal([]queries.DestinationOrders{
		{Destination: "B2", Orders: queries.OrderCounts{Total: 2, Waiting: 1, Successful: 1}},
		{Destination: "C1", Orders: queries.OrderCounts{Total: 1, Delivering: 1}},
	}, busy.Destinations)
	suite.Equal("5.5", busy.Workload.Weight.Decimal().String())
	suite.Equal(5, busy.Workload.ExtraMinutesForVolume)
	suite.Equal(22, busy.Workload.TotalHandlingMinutes)
	suite.Equal(938, busy.Workload.SuggestedStartTime)

	suite.travel.AssertExpectations(suite.T())
}

func (suite *SuggestAssignmentQueryHandlerTestSuite) TestHandle_OrdersWithoutDestinationCountOnlyInTotals() {
	suite.addPackage(suite.owner.ID(), suite.staffFulfiller(suite.lan), 900, 1000, deliverypackage.Created,
		seededOrder{kg: 1, status: order.Preparing},
		seededOrder{kg: 1, status: order.FailDelivery, destination: "A1"},
	)
	suite.travel.On("Estimate", mock.Anything, suite.owner.ID(), []string{"A1"}).
		Return(ports.TravelEstimate{}, nil).Once()

	result, err := suite.handler.Handle(suite.T().Context(), suite.query([]kernel.UUID{suite.lan.ID()}))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(queries.OrderCounts{Total: 2, Waiting: 1, Failed: 1}, result[0].Orders)
	suite.Equal([]queries.DestinationOrders{
		{Destination: "A1", Orders: queries.OrderCounts{Total: 1, Failed: 1}},
	}, result[0].Destinations)
	suite.travel.AssertExpectations(suite.T())
}

func (suite *SuggestAssignmentQueryHandlerTestSuite) TestHandle_FiltersRequestedStaff() {
	result, err := suite.handler.Handle(suite.T().Context(), suite.query([]kernel.UUID{suite.lan.ID()}))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(suite.lan.ID(), result[0].FulfillerID)
	suite.travel.AssertNotCalled(suite.T(), "Estimate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SuggestAssignmentQueryHandlerTestSuite) TestHandle_UnknownAndForeignStaffAreLeftOut() {
	outsider := suite.addStaff(suite.addShop("Other").ID(), "Outsider", staff.Available)

	result, err := suite.handler.Handle(suite.T().Context(),
		suite.query([]kernel.UUID{outsider.ID(), kernel.NewUUID()}))

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *SuggestAssignmentQueryHandlerTestSuite) TestHandle_IncludesShopWhenItSelfDelivers() {
	suite.addPackage(suite.owner.ID(), suite.shopFulfiller(suite.owner), 900, 1000, deliverypackage.Created,
		seededOrder{kg: 1, status: order.Preparing, destination: "A1"},
	)
	suite.addPackage(suite.owner.ID(), suite.staffFulfiller(suite.lan), 900, 1000, deliverypackage.Created,
		seededOrder{kg: 4, status: order.Preparing, destination: "B2"},
	)
	suite.travel.On("Estimate", mock.Anything, suite.owner.ID(), mock.Anything).
		Return(ports.TravelEstimate{MinutesToMove: 10, MinutesToWaitCustomer: 5}, nil)

	result, err := suite.handler.Handle(suite.T().Context(), suite.query(nil))

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(suite.minh.ID(), result[0].FulfillerID)
	suite.Equal(deliverypackage.ShopFulfiller, result[1].FulfillerKind)
	suite.Equal(suite.owner.ID(), result[1].FulfillerID)
	suite.Equal("Corner Bakery", result[1].Name)
	suite.Equal(staff.Unknown, result[1].StaffStatus)
	suite.Equal(1, result[1].Orders.Total)
	suite.Equal(suite.lan.ID(), result[2].FulfillerID)
}

func (suite *SuggestAssignmentQueryHandlerTestSuite) TestHandle_IgnoresOtherSlotsAndCancelledPackages() {
	suite.addPackage(suite.owner.ID(), suite.staffFulfiller(suite.lan), 900, 1000, deliverypackage.Cancelled,
		seededOrder{kg: 9, status: order.Preparing, destination: "B2"},
	)
	suite.addPackage(suite.owner.ID(), suite.staffFulfiller(suite.lan), 1000, 1100, deliverypackage.Created,
		seededOrder{kg: 9, status: order.Preparing, destination: "B2"},
	)
	suite.addPackage(suite.owner.ID(), suite.shopFulfiller(suite.owner), 1000, 1100, deliverypackage.Created,
		seededOrder{kg: 1, status: order.Preparing, destination: "B2"},
	)

	result, err := suite.handler.Handle(suite.T().Context(), suite.query(nil))

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	for _, view := range result {
		suite.Nil(view.PackageID)
		suite.Zero(view.Orders.Total)
	}
	suite.travel.AssertNotCalled(suite.T(), "Estimate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SuggestAssignmentQueryHandlerTestSuite) TestHandle_TravelFailure_ReturnsError() {
	suite.addPackage(suite.owner.ID(), suite.staffFulfiller(suite.lan), 900, 1000, deliverypackage.Created,
		seededOrder{kg: 1, status: order.Preparing, destination: "B2"},
	)
	boom := errors.New("travel service down")
	suite.travel.On("Estimate", mock.Anything, suite.owner.ID(), []string{"B2"}).
		Return(ports.TravelEstimate{}, boom)

	result, err := suite.handler.Handle(suite.T().Context(), suite.query(nil))

	suite.ErrorIs(err, boom)
	suite.Nil(result)
}

func (suite *SuggestAssignmentQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(suite.T().Context(), queries.SuggestAssignmentQuery{})

	suite.ErrorIs(err, queries.ErrSuggestAssignmentQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *SuggestAssignmentQueryHandlerTestSuite) query(staffIDs []kernel.UUID) queries.SuggestAssignmentQuery {
	query, err := queries.NewSuggestAssignmentQuery(suite.owner.ID(), 900, 1000, staffIDs)
	suite.Require().NoError(err)
	return query
}

func TestSuggestAssignmentQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SuggestAssignmentQueryHandlerTestSuite))
}
