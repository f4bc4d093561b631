package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"shopdelivery/internal/core/domain/model/deliverypackage"
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/shop"
	"shopdelivery/internal/core/domain/model/staff"
	"shopdelivery/internal/core/domain/services"
	"shopdelivery/internal/core/ports"
	"shopdelivery/internal/pkg/errs"
)

// ErrPersistPackages wraps any storage failure after the batch passed every business check.
var ErrPersistPackages = errors.New("delivery packages could not be saved")

// PackageView describes a package created by the batch.
type PackageView struct {
	ID           kernel.UUID
	Fulfiller    deliverypackage.Fulfiller
	DeliveryDate time.Time
	TimeFrame    kernel.TimeFrame
	OrderIDs     []kernel.UUID
	Weight       kernel.Weight
}

// CreateDeliveryPackagesResult holds either a warning or the created packages, never both.
type CreateDeliveryPackagesResult struct {
	Warning  *services.EarlyAssignmentWarning
	Packages []PackageView
}

// IsWarning reports that the batch stopped at the early-assignment check and wrote nothing.
// The caller repeats it with confirmation to go ahead.
func (r CreateDeliveryPackagesResult) IsWarning() bool {
	return r.Warning != nil
}

// CreateDeliveryPackagesCommandHandler runs a packaging batch as one unit of work:
// admit orders, optionally stop at the early-assignment warning, lock fulfillers, check
// bookings, build every package in memory, write, commit, then notify.
//
// Every check runs before the first write, so a rejected batch changes nothing.
// Notifications go out after commit in the background and never fail the batch.
type CreateDeliveryPackagesCommandHandler struct {
	uowFactory          UoWFactory
	clock               kernel.BusinessClock
	earlyGuard          services.EarlyAssignmentGuard
	notificationFactory ports.NotificationFactory
	notifier            ports.Notifier
	logger              *slog.Logger

	gatekeeper services.OrderGatekeeper
	detector   services.ConflictDetector
	builder    services.PackageBuilder
}

// NewCreateDeliveryPackagesCommandHandler builds the handler with the stateless domain
// services it always needs. The early guard and the notifier are injected because their
// tuning and transport come from configuration.
func NewCreateDeliveryPackagesCommandHandler(
	uowFactory UoWFactory,
	clock kernel.BusinessClock,
	earlyGuard services.EarlyAssignmentGuard,
	notificationFactory ports.NotificationFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) *CreateDeliveryPackagesCommandHandler {
	return &CreateDeliveryPackagesCommandHandler{
		uowFactory:          uowFactory,
		clock:               clock,
		earlyGuard:          earlyGuard,
		notificationFactory: notificationFactory,
		notifier:            notifier,
		logger:              logger.With("component", "create_delivery_packages"),
		gatekeeper:          services.NewOrderGatekeeper(),
		detector:            services.NewConflictDetector(),
		builder:             services.NewPackageBuilder(),
	}
}

// Handle returns either a warning or the created packages. Business rule violations come
// back as *errs.BusinessRuleError with the failing order, staff or slot in Args; storage
// failures after the checks are wrapped in ErrPersistPackages.
func (h *CreateDeliveryPackagesCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryPackagesCommand,
) (CreateDeliveryPackagesResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateDeliveryPackagesResult{}, err
	}

	now := h.clock.Now()
	today := kernel.BusinessDate(now)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateDeliveryPackagesResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	staffRepo := uow.StaffRepository()
	shopRepo := uow.ShopRepository()
	packageRepo := uow.DeliveryPackageRepository()

	orders, err := orderRepo.GetManyForShop(ctx, cmd.ShopID(), cmd.OrderIDs())
	if err != nil {
		return CreateDeliveryPackagesResult{}, err
	}

	admitted, err := h.gatekeeper.Admit(cmd.ShopID(), today, cmd.Packages(), orders)
	if err != nil {
		return CreateDeliveryPackagesResult{}, err
	}

	if !cmd.Confirmed() {
		if warning := h.earlyGuard.Check(now, admitted[0].Orders[0]); warning != nil {
			h.logger.InfoContext(ctx, "packaging deferred by early-assignment warning",
				"shop_id", cmd.ShopID().String(),
				"order_id", warning.OrderID.String(),
				"remaining", warning.RemainingLabel(),
			)
			return CreateDeliveryPackagesResult{Warning: warning}, nil
		}
	}

	fulfillers, assignees, owner, err := lockFulfillers(ctx, staffRepo, shopRepo, cmd.ShopID(), admitted)
	if err != nil {
		return CreateDeliveryPackagesResult{}, err
	}

	if err = h.detectConflicts(ctx, packageRepo, today, admitted, fulfillers); err != nil {
		return CreateDeliveryPackagesResult{}, err
	}

	built := make([]services.BuiltPackage, 0, len(admitted))
	for i, a := range admitted {
		b, buildErr := h.builder.Build(kernel.NewUUID(), today, fulfillers[i], a.Orders, assignees[i])
		if buildErr != nil {
			return CreateDeliveryPackagesResult{}, buildErr
		}
		built = append(built, b)
	}

	if err = h.persist(ctx, uow, orderRepo, staffRepo, packageRepo, cmd.ShopID(), built); err != nil {
		return CreateDeliveryPackagesResult{}, err
	}

	notifications := make([]ports.Notification, 0, len(built))
	views := make([]PackageView, 0, len(built))
	for _, b := range built {
		// Self-delivered packages have nobody to notify.
		if b.Staff != nil {
			notifications = append(notifications, h.notificationFactory.BuildAssignmentNotification(b.Package, b.Staff, owner))
		}
		views = append(views, PackageView{
			ID:           b.Package.ID(),
			Fulfiller:    b.Package.Fulfiller(),
			DeliveryDate: b.Package.DeliveryDate(),
			TimeFrame:    b.Package.TimeFrame(),
			OrderIDs:     b.Package.OrderIDs(),
			Weight:       b.Weight,
		})
	}

	go h.dispatch(context.WithoutCancel(ctx), notifications)

	return CreateDeliveryPackagesResult{Packages: views}, nil
}

// lockFulfillers locks each distinct staff member in ascending id order and then the shop
// row, so concurrent batches over overlapping staff always acquire locks in the same order.
// The shop is locked only when at least one package is self-delivered; otherwise it is
// read for notifications.
func lockFulfillers(
	ctx context.Context,
	staffRepo ports.StaffRepository,
	shopRepo ports.ShopRepository,
	shopID kernel.UUID,
	admitted []services.AdmittedPackage,
) ([]deliverypackage.Fulfiller, []*staff.Staff, *shop.Shop, error) {
	fulfillers := make([]deliverypackage.Fulfiller, len(admitted))
	assignees := make([]*staff.Staff, len(admitted))
	locked := make(map[kernel.UUID]*staff.Staff)
	selfDelivery := false

	staffIDs := make([]kernel.UUID, 0, len(admitted))
	for _, a := range admitted {
		if a.StaffID == nil {
			selfDelivery = true
			continue
		}
		if _, seen := locked[*a.StaffID]; seen {
			continue
		}
		locked[*a.StaffID] = nil
		staffIDs = append(staffIDs, *a.StaffID)
	}
	slices.SortFunc(staffIDs, kernel.UUID.Compare)

	for _, id := range staffIDs {
		member, err := staffRepo.GetForShop(ctx, shopID, id)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil, nil, services.NewStaffNotFoundError(id)
		}
		if err != nil {
			return nil, nil, nil, err
		}
		locked[id] = member
	}

	var (
		owner *shop.Shop
		err   error
	)
	if selfDelivery {
		owner, err = shopRepo.GetForUpdate(ctx, shopID)
	} else {
		owner, err = shopRepo.Get(ctx, shopID)
	}
	if err != nil {
		return nil, nil, nil, err
	}

	for i, a := range admitted {
		var f deliverypackage.Fulfiller
		var fErr error
		if a.StaffID == nil {
			f, fErr = deliverypackage.NewShopFulfiller(owner.ID())
		} else {
			member := locked[*a.StaffID]
			f, fErr = deliverypackage.NewStaffFulfiller(member.ID())
			assignees[i] = member
		}
		if fErr != nil {
			return nil, nil, nil, fErr
		}
		fulfillers[i] = f
	}

	return fulfillers, assignees, owner, nil
}

// detectConflicts loads each fulfiller's packages of the day once and checks the batch
// against them and against itself.
func (h *CreateDeliveryPackagesCommandHandler) detectConflicts(
	ctx context.Context,
	packageRepo ports.DeliveryPackageRepository,
	today time.Time,
	admitted []services.AdmittedPackage,
	fulfillers []deliverypackage.Fulfiller,
) error {
	bookings := make([]services.Booking, 0, len(admitted))
	var existing []*deliverypackage.DeliveryPackage
	listed := make([]deliverypackage.Fulfiller, 0, len(fulfillers))

	for i, a := range admitted {
		bookings = append(bookings, services.Booking{Fulfiller: fulfillers[i], TimeFrame: a.TimeFrame})

		if containsFulfiller(listed, fulfillers[i]) {
			continue
		}
		listed = append(listed, fulfillers[i])

		packages, err := packageRepo.ListByFulfillerOnDate(ctx, fulfillers[i], today)
		if err != nil {
			return err
		}
		existing = append(existing, packages...)
	}

	return h.detector.Detect(today, bookings, existing)
}

// persist writes packages, orders and assigned staff, then commits. A unique violation on
// the package slot means a concurrent batch won the same fulfiller and frame.
func (h *CreateDeliveryPackagesCommandHandler) persist(
	ctx context.Context,
	tx TxManager,
	orderRepo ports.OrderRepository,
	staffRepo ports.StaffRepository,
	packageRepo ports.DeliveryPackageRepository,
	shopID kernel.UUID,
	built []services.BuiltPackage,
) error {
	var assignees []*staff.Staff
	for _, b := range built {
		if err := packageRepo.Add(ctx, b.Package); err != nil {
			if errors.Is(err, deliverypackage.ErrSlotAlreadyTaken) {
				return services.NewFulfillerAlreadyBookedError(b.Package.Fulfiller(), b.Package.TimeFrame())
			}
			return h.persistFailure(ctx, shopID, err)
		}
		for _, o := range b.Orders {
			if err := orderRepo.Update(ctx, o); err != nil {
				return h.persistFailure(ctx, shopID, err)
			}
		}
		if b.Staff != nil && !containsStaff(assignees, b.Staff) {
			assignees = append(assignees, b.Staff)
		}
	}

	for _, s := range assignees {
		if err := staffRepo.Update(ctx, s); err != nil {
			return h.persistFailure(ctx, shopID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return h.persistFailure(ctx, shopID, err)
	}

	h.logger.InfoContext(ctx, "delivery packages created",
		"shop_id", shopID.String(),
		"packages", len(built),
	)
	return nil
}

func (h *CreateDeliveryPackagesCommandHandler) persistFailure(ctx context.Context, shopID kernel.UUID, err error) error {
	h.logger.ErrorContext(ctx, "failed to persist delivery packages",
		"shop_id", shopID.String(),
		"error", err,
	)
	return fmt.Errorf("%w: %w", ErrPersistPackages, err)
}

func (h *CreateDeliveryPackagesCommandHandler) dispatch(ctx context.Context, notifications []ports.Notification) {
	if len(notifications) == 0 {
		return
	}
	if err := h.notifier.Dispatch(ctx, notifications); err != nil {
		h.logger.WarnContext(ctx, "failed to dispatch assignment notifications",
			"count", len(notifications),
			"error", err,
		)
	}
}

func containsFulfiller(list []deliverypackage.Fulfiller, f deliverypackage.Fulfiller) bool {
	for _, item := range list {
		if item.Equals(f) {
			return true
		}
	}
	return false
}

func containsStaff(list []*staff.Staff, s *staff.Staff) bool {
	for _, item := range list {
		if item.ID().IsEqual(s.ID()) {
			return true
		}
	}
	return false
}
