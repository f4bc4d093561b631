package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"shopdelivery/internal/core/application/usecases/commands"
	"shopdelivery/internal/core/application/usecases/queries"
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/services"
	"shopdelivery/internal/core/ports"
	"shopdelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	RegisterShopHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterShopCommand) error
	}

	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	ConfirmOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ConfirmOrderCommand) error
	}

	PrepareOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PrepareOrderCommand) error
	}

	CreateDeliveryStaffHandler interface {
		Handle(ctx context.Context, cmd commands.CreateDeliveryStaffCommand) error
	}

	CreateDeliveryPackagesHandler interface {
		Handle(ctx context.Context, cmd commands.CreateDeliveryPackagesCommand) (commands.CreateDeliveryPackagesResult, error)
	}

	GetDeliveryStaffHandler interface {
		Handle(ctx context.Context, query queries.GetDeliveryStaffQuery) ([]queries.GetDeliveryStaffQueryResponse, error)
	}

	GetPackageableOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetPackageableOrdersQuery) ([]queries.GetPackageableOrdersQueryResponse, error)
	}

	SuggestAssignmentHandler interface {
		Handle(ctx context.Context, query queries.SuggestAssignmentQuery) ([]queries.SuggestAssignmentQueryResponse, error)
	}
)

// Handlers groups the use cases the HTTP interface exposes.
type Handlers struct {
	RegisterShop           RegisterShopHandler
	CreateOrder            CreateOrderHandler
	ConfirmOrder           ConfirmOrderHandler
	PrepareOrder           PrepareOrderHandler
	CreateDeliveryStaff    CreateDeliveryStaffHandler
	CreateDeliveryPackages CreateDeliveryPackagesHandler
	GetDeliveryStaff       GetDeliveryStaffHandler
	GetPackageableOrders   GetPackageableOrdersHandler
	SuggestAssignment      SuggestAssignmentHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the command and query handlers.
// Failures are rendered as localized servers.Error bodies.
type Server struct {
	handlers Handlers
	errors   errorRenderer
}

// NewServer renders error messages in defaultLang unless the request sends Accept-Language.
func NewServer(handlers Handlers, catalog ports.MessageCatalog, defaultLang string, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		errors: errorRenderer{
			catalog:     catalog,
			defaultLang: defaultLang,
			logger:      logger.With("component", "http"),
		},
	}
}

// RegisterShop handles POST /api/v1/shops.
func (s *Server) RegisterShop(ctx echo.Context) error {
	var body servers.NewShop
	if err := bindBody(ctx, &body); err != nil {
		return s.errors.render(ctx, nil, err)
	}

	ownerID, err := toKernelID("ownerAccountId", body.OwnerAccountId)
	if err != nil {
		return s.errors.render(ctx, nil, err)
	}

	cmd, err := commands.NewRegisterShopCommand(kernel.NewUUID(), ownerID, body.Name)
	if err != nil {
		return s.errors.render(ctx, nil, err)
	}

	if err = s.handlers.RegisterShop.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errors.render(ctx, nil, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: cmd.ShopID().Bytes()})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context, params servers.ShopParams) error {
	var body servers.NewOrder
	if err := bindBody(ctx, &body); err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	shopID, err := toKernelID(servers.ShopIdHeader, params.XShopId)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	y, m, d := body.IntendedReceiveDate.Date()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		shopID,
		time.Date(y, m, d, 0, 0, 0, 0, kernel.BusinessLocation),
		body.StartTime,
		body.EndTime,
		body.TotalWeight,
		body.Destination,
	)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: cmd.OrderID().Bytes()})
}

// GetPackageableOrders handles GET /api/v1/orders/packageable.
func (s *Server) GetPackageableOrders(ctx echo.Context, params servers.ShopParams) error {
	shopID, err := toKernelID(servers.ShopIdHeader, params.XShopId)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	query, err := queries.NewGetPackageableOrdersQuery(shopID)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	orders, err := s.handlers.GetPackageableOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	response := make([]servers.PackageableOrder, len(orders))
	for i, o := range orders {
		response[i] = servers.PackageableOrder{
			Id:          o.ID.Bytes(),
			StartTime:   o.TimeFrame.Start(),
			EndTime:     o.TimeFrame.End(),
			TimeFrame:   o.TimeFrame.Label(),
			TotalWeight: o.Weight.Decimal(),
			Destination: o.Destination,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.ShopParams) error {
	shopID, orderID, err := orderTarget(params, orderId)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(shopID, orderID)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	if err = s.handlers.ConfirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PrepareOrder handles POST /api/v1/orders/{orderId}/prepare.
func (s *Server) PrepareOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.ShopParams) error {
	shopID, orderID, err := orderTarget(params, orderId)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	cmd, err := commands.NewPrepareOrderCommand(shopID, orderID)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	if err = s.handlers.PrepareOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryStaff handles GET /api/v1/delivery-staff.
func (s *Server) GetDeliveryStaff(ctx echo.Context, params servers.ShopParams) error {
	shopID, err := toKernelID(servers.ShopIdHeader, params.XShopId)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	query, err := queries.NewGetDeliveryStaffQuery(shopID)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	members, err := s.handlers.GetDeliveryStaff.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	response := make([]servers.DeliveryStaff, len(members))
	for i, member := range members {
		response[i] = servers.DeliveryStaff{
			Id:             member.ID.Bytes(),
			FullName:       member.FullName,
			Phone:          member.Phone,
			Status:         servers.StaffStatus(member.Status.String()),
			ActivePackages: member.ActivePackages,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDeliveryStaff handles POST /api/v1/delivery-staff.
func (s *Server) CreateDeliveryStaff(ctx echo.Context, params servers.ShopParams) error {
	var body servers.NewDeliveryStaff
	if err := bindBody(ctx, &body); err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	shopID, err := toKernelID(servers.ShopIdHeader, params.XShopId)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}
	accountID, err := toKernelID("accountId", body.AccountId)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	cmd, err := commands.NewCreateDeliveryStaffCommand(shopID, accountID, body.FullName, body.Phone)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	if err = s.handlers.CreateDeliveryStaff.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: cmd.StaffID().Bytes()})
}

// CreateDeliveryPackages handles POST /api/v1/delivery-packages. A warning is answered
// with 200 and nothing created; created packages with 201.
func (s *Server) CreateDeliveryPackages(ctx echo.Context, params servers.ShopParams) error {
	var body servers.NewDeliveryPackages
	if err := bindBody(ctx, &body); err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	shopID, err := toKernelID(servers.ShopIdHeader, params.XShopId)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}
	requests, err := toPackageRequests(body.Packages)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	cmd, err := commands.NewCreateDeliveryPackagesCommand(shopID, requests, body.Confirmed)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	result, err := s.handlers.CreateDeliveryPackages.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errors.render(ctx, params.AcceptLanguage, err)
	}

	if result.IsWarning() {
		w := result.Warning
		return ctx.JSON(http.StatusOK, servers.AssignmentWarning{
			Code: services.CodeAssignEarlyWarning,
			Message: s.errors.catalog.Message(s.errors.lang(params.AcceptLanguage), services.CodeAssignEarlyWarning,
				services.FormatID(w.OrderID), w.TimeFrame.Label(), w.RemainingLabel()),
			RemainingWait: w.RemainingLabel(),
		})
	}

	response := servers.CreatedDeliveryPackages{Packages: make([]servers.DeliveryPackage, len(result.Packages))}
	for i, p := range result.Packages {
		orderIDs := make([]openapi_types.UUID, len(p.OrderIDs))
		for j, id := range p.OrderIDs {
			orderIDs[j] = id.Bytes()
		}
		response.Packages[i] = servers.DeliveryPackage{
			Id:            p.ID.Bytes(),
			FulfillerKind: servers.FulfillerKind(p.Fulfiller.Kind().String()),
			FulfillerId:   p.Fulfiller.ID().Bytes(),
			DeliveryDate:  openapi_types.Date{Time: p.DeliveryDate},
			StartTime:     p.TimeFrame.Start(),
			EndTime:       p.TimeFrame.End(),
			TimeFrame:     p.TimeFrame.Label(),
			OrderIds:      orderIDs,
			TotalWeight:   p.Weight.Decimal(),
		}
	}

	return ctx.JSON(http.StatusCreated, response)
}

// SuggestAssignment handles GET /api/v1/delivery-packages/suggestions.
func (s *Server) SuggestAssignment(ctx echo.Context, params servers.SuggestAssignmentParams) error {
	lang := params.AcceptLanguage

	shopID, err := toKernelID(servers.ShopIdHeader, params.XShopId)
	if err != nil {
		return s.errors.render(ctx, lang, err)
	}

	var staffIDs []kernel.UUID
	if params.StaffIds != nil {
		staffIDs = make([]kernel.UUID, 0, len(*params.StaffIds))
		for _, raw := range *params.StaffIds {
			id, idErr := toKernelID("staffIds", raw)
			if idErr != nil {
				return s.errors.render(ctx, lang, idErr)
			}
			staffIDs = append(staffIDs, id)
		}
	}

	query, err := queries.NewSuggestAssignmentQuery(shopID, params.StartTime, params.EndTime, staffIDs)
	if err != nil {
		return s.errors.render(ctx, lang, err)
	}

	suggestions, err := s.handlers.SuggestAssignment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errors.render(ctx, lang, err)
	}

	response := make([]servers.AssignmentSuggestion, len(suggestions))
	for i, suggestion := range suggestions {
		response[i] = toSuggestion(suggestion)
	}

	return ctx.JSON(http.StatusOK, response)
}
