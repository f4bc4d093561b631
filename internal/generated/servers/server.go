package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Register a shop
	// (POST /api/v1/shops)
	RegisterShop(ctx echo.Context) error
	// Place an order for the acting shop
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context, params ShopParams) error
	// Today's orders in preparation that belong to no package
	// (GET /api/v1/orders/packageable)
	GetPackageableOrders(ctx echo.Context, params ShopParams) error
	// Accept a pending order
	// (POST /api/v1/orders/{orderId}/confirm)
	ConfirmOrder(ctx echo.Context, orderId openapi_types.UUID, params ShopParams) error
	// Start preparing a confirmed order
	// (POST /api/v1/orders/{orderId}/prepare)
	PrepareOrder(ctx echo.Context, orderId openapi_types.UUID, params ShopParams) error
	// Delivery staff of the acting shop
	// (GET /api/v1/delivery-staff)
	GetDeliveryStaff(ctx echo.Context, params ShopParams) error
	// Register a delivery staff member
	// (POST /api/v1/delivery-staff)
	CreateDeliveryStaff(ctx echo.Context, params ShopParams) error
	// Group orders into delivery packages
	// (POST /api/v1/delivery-packages)
	CreateDeliveryPackages(ctx echo.Context, params ShopParams) error
	// Workload of every candidate fulfiller in a time frame
	// (GET /api/v1/delivery-packages/suggestions)
	SuggestAssignment(ctx echo.Context, params SuggestAssignmentParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// RegisterShop converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterShop(ctx echo.Context) error {
	return w.Handler.RegisterShop(ctx)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	params, err := bindShopParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CreateOrder(ctx, params)
}

// GetPackageableOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetPackageableOrders(ctx echo.Context) error {
	params, err := bindShopParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetPackageableOrders(ctx, params)
}

// ConfirmOrder converts echo context to params.
func (w *ServerInterfaceWrapper) ConfirmOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	params, err := bindShopParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ConfirmOrder(ctx, orderId, params)
}

// PrepareOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PrepareOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	params, err := bindShopParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.PrepareOrder(ctx, orderId, params)
}

// GetDeliveryStaff converts echo context to params.
func (w *ServerInterfaceWrapper) GetDeliveryStaff(ctx echo.Context) error {
	params, err := bindShopParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetDeliveryStaff(ctx, params)
}

// CreateDeliveryStaff converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDeliveryStaff(ctx echo.Context) error {
	params, err := bindShopParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CreateDeliveryStaff(ctx, params)
}

// CreateDeliveryPackages converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDeliveryPackages(ctx echo.Context) error {
	params, err := bindShopParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CreateDeliveryPackages(ctx, params)
}

// SuggestAssignment converts echo context to params.
func (w *ServerInterfaceWrapper) SuggestAssignment(ctx echo.Context) error {
	shop, err := bindShopParams(ctx)
	if err != nil {
		return err
	}
	params := SuggestAssignmentParams{ShopParams: shop}

	// ------------- Required query parameter "startTime" -------------
	err = runtime.BindQueryParameter("form", true, true, "startTime", ctx.QueryParams(), &params.StartTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter startTime: %s", err))
	}

	// ------------- Required query parameter "endTime" -------------
	err = runtime.BindQueryParameter("form", true, true, "endTime", ctx.QueryParams(), &params.EndTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter endTime: %s", err))
	}

	// ------------- Optional query parameter "staffIds" -------------
	err = runtime.BindQueryParameter("form", true, false, "staffIds", ctx.QueryParams(), &params.StaffIds)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter staffIds: %s", err))
	}

	return w.Handler.SuggestAssignment(ctx, params)
}

func bindOrderId(ctx echo.Context) (openapi_types.UUID, error) {
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return orderId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderId, nil
}

func bindShopParams(ctx echo.Context) (ShopParams, error) {
	var params ShopParams
	headers := ctx.Request().Header

	// ------------- Required header parameter "X-Shop-Id" -------------
	valueList, found := headers[http.CanonicalHeaderKey(ShopIdHeader)]
	if !found {
		return params, echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-Shop-Id is required, but not found")
	}
	if n := len(valueList); n != 1 {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Shop-Id, got %d", n))
	}
	err := runtime.BindStyledParameterWithOptions("simple", ShopIdHeader, valueList[0], &params.XShopId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Shop-Id: %s", err))
	}

	// ------------- Optional header parameter "Accept-Language" -------------
	if valueList, found := headers[http.CanonicalHeaderKey(AcceptLanguageHeader)]; found && len(valueList) > 0 {
		lang := valueList[0]
		params.AcceptLanguage = &lang
	}

	return params, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group that RegisterHandlers needs.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that
// the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/shops", wrapper.RegisterShop)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/packageable", wrapper.GetPackageableOrders)
	router.POST(baseURL+"/api/v1/orders/:orderId/confirm", wrapper.ConfirmOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/prepare", wrapper.PrepareOrder)
	router.GET(baseURL+"/api/v1/delivery-staff", wrapper.GetDeliveryStaff)
	router.POST(baseURL+"/api/v1/delivery-staff", wrapper.CreateDeliveryStaff)
	router.POST(baseURL+"/api/v1/delivery-packages", wrapper.CreateDeliveryPackages)
	router.GET(baseURL+"/api/v1/delivery-packages/suggestions", wrapper.SuggestAssignment)
}
