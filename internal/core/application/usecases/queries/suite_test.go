package queries_test

import (
	"context"
	"log/slog"
	"time"

	postgres_adapter "shopdelivery/internal/adapters/out/postgres"
	"shopdelivery/internal/core/domain/model/deliverypackage"
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/order"
	"shopdelivery/internal/core/domain/model/shop"
	"shopdelivery/internal/core/domain/model/staff"
	"shopdelivery/internal/core/ports"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var today = time.Date(2024, 3, 5, 0, 0, 0, 0, kernel.BusinessLocation)

// databaseSuite owns one Postgres container per query suite and seeds rows through the
// real repositories.
type databaseSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	uow       ports.UnitOfWork
	clock     kernel.BusinessClock
}

func (suite *databaseSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.uow = postgres_adapter.NewGormUnitOfWorkFactory(db, slog.New(slog.DiscardHandler)).Create()
	suite.clock = kernel.NewBusinessClock(clockwork.NewFakeClockAt(today.Add(8 * time.Hour)))
}

func (suite *databaseSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *databaseSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE shops, delivery_staff, orders, delivery_packages, delivery_package_orders").Error
	suite.Require().NoError(err)
}

func (suite *databaseSuite) addShop(name string) *shop.Shop {
	s, err := shop.NewShop(kernel.NewUUID(), kernel.NewUUID(), name)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.ShopRepository().Add(context.Background(), s))
	return s
}

func (suite *databaseSuite) addStaff(shopID kernel.UUID, name string, status staff.Status) *staff.Staff {
	member, err := staff.RestoreStaff(kernel.NewUUID(), shopID, kernel.NewUUID(), name, "0900000000", status)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.StaffRepository().Add(context.Background(), member))
	return member
}

type seededOrder struct {
	kg          float64
	status      order.Status
	destination string
}

func (suite *databaseSuite) addOrder(
	shopID kernel.UUID,
	date time.Time,
	start, end int,
	spec seededOrder,
	packageID *kernel.UUID,
) *order.Order {
	frame, err := kernel.NewTimeFrame(start, end)
	suite.Require().NoError(err)
	weight, err := kernel.NewWeightFromFloat(spec.kg)
	suite.Require().NoError(err)

	o, err := order.RestoreOrder(kernel.NewUUID(), shopID, date, frame, weight, spec.destination, spec.status, packageID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.OrderRepository().Add(context.Background(), o))
	return o
}

// addPackage stores a package in the given status with freshly created member orders.
func (suite *databaseSuite) addPackage(
	shopID kernel.UUID,
	fulfiller deliverypackage.Fulfiller,
	start, end int,
	status deliverypackage.Status,
	orders ...seededOrder,
) *deliverypackage.DeliveryPackage {
	packageID := kernel.NewUUID()
	orderIDs := make([]kernel.UUID, 0, len(orders))
	for _, spec := range orders {
		o := suite.addOrder(shopID, today, start, end, spec, &packageID)
		orderIDs = append(orderIDs, o.ID())
	}

	frame, err := kernel.NewTimeFrame(start, end)
	suite.Require().NoError(err)
	pkg, err := deliverypackage.RestoreDeliveryPackage(packageID, today, frame, status, fulfiller, orderIDs)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.DeliveryPackageRepository().Add(context.Background(), pkg))
	return pkg
}

func (suite *databaseSuite) staffFulfiller(member *staff.Staff) deliverypackage.Fulfiller {
	f, err := deliverypackage.NewStaffFulfiller(member.ID())
	suite.Require().NoError(err)
	return f
}

func (suite *databaseSuite) shopFulfiller(s *shop.Shop) deliverypackage.Fulfiller {
	f, err := deliverypackage.NewShopFulfiller(s.ID())
	suite.Require().NoError(err)
	return f
}
