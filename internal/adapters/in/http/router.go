// Package http exposes the packaging engine over echo. Requests are checked against the
// OpenAPI document before they reach the handlers; the acting shop comes from the
// X-Shop-Id header.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"shopdelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving s, the health check and the swagger UI.
func NewRouter(s *Server, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	validate, err := newRequestValidator()
	if err != nil {
		return nil, err
	}

	requestValidation, err := openAPIValidator(doc, s.errors)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validate
	e.HTTPErrorHandler = httpErrorHandler(s.errors)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(requestValidation)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, s)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http_access")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError || v.Error != nil {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// httpErrorHandler renders errors returned past the handlers, such as parameter binding
// failures and unknown routes, in the servers.Error shape.
func httpErrorHandler(renderer errorRenderer) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		lang := c.Request().Header.Get(servers.AcceptLanguageHeader)
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusNotFound {
			_ = c.JSON(http.StatusNotFound, servers.Error{
				Code:    CodeNotFound,
				Message: renderer.catalog.Message(renderer.lang(&lang), CodeNotFound, c.Request().URL.Path),
			})
			return
		}

		if renderErr := renderer.render(c, &lang, err); renderErr != nil {
			renderer.logger.ErrorContext(context.WithoutCancel(c.Request().Context()), "failed to write error response",
				"error", renderErr)
		}
	}
}
