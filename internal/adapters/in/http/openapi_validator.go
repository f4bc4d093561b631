package http

import (
	"errors"
	"net/http"

	"shopdelivery/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// openAPIValidator rejects requests that do not match the OpenAPI document. Paths the
// document does not describe, such as /health, pass through untouched.
func openAPIValidator(doc *openapi3.T, renderer errorRenderer) (echo.MiddlewareFunc, error) {
	// Requests are matched on path only, whatever host serves them.
	doc.Servers = nil
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{AuthenticationFunc: openapi3filter.NoopAuthenticationFunc}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				// The router reports misses as a fresh RouteError carrying the sentinel text.
				var routeErr *routers.RouteError
				if !errors.As(err, &routeErr) {
					return err
				}
				switch routeErr.Reason {
				case routers.ErrPathNotFound.Error():
					return next(ctx)
				case routers.ErrMethodNotAllowed.Error():
					return echo.ErrMethodNotAllowed
				default:
					return err
				}
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return renderRequestError(ctx, renderer, err)
			}

			return next(ctx)
		}
	}, nil
}

func renderRequestError(ctx echo.Context, renderer errorRenderer, err error) error {
	lang := ctx.Request().Header.Get(servers.AcceptLanguageHeader)
	code, args := CodeValidation, []any{err.Error()}

	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) && requestErr.Parameter != nil && requestErr.Parameter.Name == servers.ShopIdHeader {
		code, args = CodeShopRequired, nil
	}

	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    code,
		Message: renderer.catalog.Message(renderer.lang(&lang), code, args...),
	})
}
