package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpadapter "shopdelivery/internal/adapters/in/http"
	"shopdelivery/internal/adapters/out/messages"
	"shopdelivery/internal/adapters/out/notifier"
	"shopdelivery/internal/adapters/out/postgres"
	"shopdelivery/internal/adapters/out/travel"
	"shopdelivery/internal/core/application/usecases/commands"
	"shopdelivery/internal/core/application/usecases/queries"
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/services"
	"shopdelivery/internal/jobs"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

// CompositionRoot owns the process-wide adapters and builds a fresh handler for each
// use case on demand. Handlers share the connection pool, clock, catalog, notifier and
// travel cache, but every handler invocation opens its own unit of work.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	clock      kernel.BusinessClock
	catalog    *messages.Catalog
	notifier   *notifier.Notifier
	travel     *travel.CachedEstimator
	earlyGuard services.EarlyAssignmentGuard
	workload   services.WorkloadEstimator
}

// NewCompositionRoot connects the outbound adapters. Close releases them.
func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	catalog, err := messages.NewCatalog(cfg.MessageLocale)
	if err != nil {
		return nil, fmt.Errorf("message catalog: %w", err)
	}

	earlyGuard, err := services.NewEarlyAssignmentGuard(cfg.EarlyAssignWarningWindow())
	if err != nil {
		return nil, err
	}
	workload, err := services.NewWorkloadEstimator(cfg.MinutesPerFiveOrders)
	if err != nil {
		return nil, err
	}

	defaultTravel, err := travel.NewDefaultEstimator(cfg.DefaultMinutesToMove, cfg.DefaultMinutesToWaitCustomer)
	if err != nil {
		return nil, err
	}
	cachedTravel, err := travel.NewCachedEstimator(ctx, travel.CacheConfig{
		Enabled: cfg.RedisEnabled,
		Addr:    cfg.RedisAddr,
		TTL:     cfg.TravelCacheTTL,
	}, defaultTravel, logger)
	if err != nil {
		return nil, err
	}

	provider, err := notifier.NewProvider(notifier.Config{
		Type:                       cfg.Notifier,
		ServiceBusConnectionString: cfg.ServiceBusConnectionString,
		ServiceBusQueue:            cfg.ServiceBusQueue,
		RabbitMQURL:                cfg.RabbitMQURL,
		RabbitMQExchange:           cfg.RabbitMQExchange,
	}, logger)
	if err != nil {
		_ = cachedTravel.Close()
		return nil, fmt.Errorf("notifier: %w", err)
	}

	wallClock := clockwork.NewRealClock()

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		logger:     logger,
		clock:      kernel.NewBusinessClock(wallClock),
		catalog:    catalog,
		notifier:   notifier.NewNotifier(provider, wallClock, logger),
		travel:     cachedTravel,
		earlyGuard: earlyGuard,
		workload:   workload,
	}, nil
}

// Close stops the notifier transport and the travel cache client. The database handle
// belongs to the caller.
func (c *CompositionRoot) Close() error {
	return errors.Join(c.notifier.Close(), c.travel.Close())
}

// Catalog is shared with the HTTP error renderer.
func (c *CompositionRoot) Catalog() *messages.Catalog {
	return c.catalog
}

func (c *CompositionRoot) CreateRegisterShopCommandHandler() commands.RegisterShopCommandHandler {
	var f commands.ShopUoWFactory = FuncShopUoWFactory(func() commands.ShopUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterShopCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePrepareOrderCommandHandler() commands.PrepareOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPrepareOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryStaffCommandHandler() commands.CreateDeliveryStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateReleaseIdleStaffCommandHandler() commands.ReleaseIdleStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseIdleStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryPackagesCommandHandler() *commands.CreateDeliveryPackagesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryPackagesCommandHandler(
		f,
		c.clock,
		c.earlyGuard,
		notifier.NewNotificationFactory(c.catalog, c.cfg.MessageLocale),
		c.notifier,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetDeliveryStaffQueryHandler() queries.GetDeliveryStaffQueryHandler {
	return queries.NewGetDeliveryStaffQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackageableOrdersQueryHandler() queries.GetPackageableOrdersQueryHandler {
	return queries.NewGetPackageableOrdersQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateSuggestAssignmentQueryHandler() queries.SuggestAssignmentQueryHandler {
	return queries.NewSuggestAssignmentQueryHandler(c.gormDB, c.clock, c.workload, c.travel)
}

// HTTPHandlers wires every use case the HTTP server exposes.
func (c *CompositionRoot) HTTPHandlers() httpadapter.Handlers {
	createOrder := c.CreateCreateOrderCommandHandler()

	return httpadapter.Handlers{
		RegisterShop:           c.CreateRegisterShopCommandHandler(),
		CreateOrder:            &createOrder,
		ConfirmOrder:           c.CreateConfirmOrderCommandHandler(),
		PrepareOrder:           c.CreatePrepareOrderCommandHandler(),
		CreateDeliveryStaff:    c.CreateCreateDeliveryStaffCommandHandler(),
		CreateDeliveryPackages: c.CreateCreateDeliveryPackagesCommandHandler(),
		GetDeliveryStaff:       c.CreateGetDeliveryStaffQueryHandler(),
		GetPackageableOrders:   c.CreateGetPackageableOrdersQueryHandler(),
		SuggestAssignment:      c.CreateSuggestAssignmentQueryHandler(),
	}
}

// CreateJobManager schedules the idle staff release on the configured cron expression.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReleaseIdleStaffCommandHandler(), c.cfg.StaffReleaseSchedule, c.logger)
}

// The Func*UoWFactory adapters narrow the full unit of work to the view each command
// handler depends on.

type FuncShopUoWFactory func() commands.ShopUoW

func (f FuncShopUoWFactory) Create() commands.ShopUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
