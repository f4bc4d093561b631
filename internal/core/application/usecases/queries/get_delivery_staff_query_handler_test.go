package queries_test

import (
	"testing"

	"shopdelivery/internal/core/application/usecases/queries"
	"shopdelivery/internal/core/domain/model/deliverypackage"
	"shopdelivery/internal/core/domain/model/order"
	"shopdelivery/internal/core/domain/model/staff"

	"github.com/stretchr/testify/suite"
)

type GetDeliveryStaffQueryHandlerTestSuite struct {
	databaseSuite
	handler queries.GetDeliveryStaffQueryHandler
}

func (suite *GetDeliveryStaffQueryHandlerTestSuite) SetupSuite() {
	suite.databaseSuite.SetupSuite()
	suite.handler = queries.NewGetDeliveryStaffQueryHandler(suite.db)
}

func (suite *GetDeliveryStaffQueryHandlerTestSuite) TestHandle_EmptyShop_ReturnsEmptySlice() {
	query, err := queries.NewGetDeliveryStaffQuery(suite.addShop("Corner Bakery").ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetDeliveryStaffQueryHandlerTestSuite) TestHandle_ListsShopStaffWithActivePackages() {
	owner := suite.addShop("Corner Bakery")
	minh := suite.addStaff(owner.ID(), "Minh", staff.Available)
	lan := suite.addStaff(owner.ID(), "Lan", staff.Busy)
	suite.addStaff(suite.addShop("Other").ID(), "Outsider", staff.Available)

	preparing := seededOrder{kg: 1, status: order.Preparing, destination: "B2"}
	suite.addPackage(owner.ID(), suite.staffFulfiller(lan), 900, 1000, deliverypackage.Created, preparing)
	suite.addPackage(owner.ID(), suite.staffFulfiller(lan), 1000, 1100, deliverypackage.Delivering, preparing)
	suite.addPackage(owner.ID(), suite.staffFulfiller(minh), 900, 1000, deliverypackage.Cancelled, preparing)

	query, err := queries.NewGetDeliveryStaffQuery(owner.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(lan.ID(), result[0].ID)
	suite.Equal("Lan", result[0].FullName)
	suite.Equal("0900000000", result[0].Phone)
	suite.Equal(staff.Busy, result[0].Status)
	suite.Equal(2, result[0].ActivePackages)

	suite.Equal(minh.ID(), result[1].ID)
	suite.Equal(staff.Available, result[1].Status)
	suite.Equal(0, result[1].ActivePackages)
}

func (suite *GetDeliveryStaffQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(suite.T().Context(), queries.GetDeliveryStaffQuery{})

	suite.ErrorIs(err, queries.ErrGetDeliveryStaffQueryIsNotConstructed)
	suite.Nil(result)
}

func TestGetDeliveryStaffQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDeliveryStaffQueryHandlerTestSuite))
}
