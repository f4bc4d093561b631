package http

import (
	"errors"
	"log/slog"
	"net/http"

	"shopdelivery/internal/core/application/usecases/commands"
	"shopdelivery/internal/core/domain/services"
	"shopdelivery/internal/core/ports"
	"shopdelivery/internal/generated/servers"
	"shopdelivery/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	CodeValidation   = "E_VALIDATION"
	CodeNotFound     = "E_NOT_FOUND"
	CodeShopRequired = "E_SHOP_REQUIRED"
	CodeInternal     = "E_INTERNAL"
)

type errorRenderer struct {
	catalog     ports.MessageCatalog
	defaultLang string
	logger      *slog.Logger
}

func (r errorRenderer) lang(acceptLanguage *string) string {
	if acceptLanguage == nil || *acceptLanguage == "" {
		return r.defaultLang
	}
	return *acceptLanguage
}

// render writes err as a servers.Error. Business rule violations carry their own code;
// anything unrecognized is logged and hidden behind E_INTERNAL.
func (r errorRenderer) render(ctx echo.Context, acceptLanguage *string, err error) error {
	status, code, args := classify(err)
	if status == http.StatusInternalServerError {
		r.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
	}

	return ctx.JSON(status, servers.Error{
		Code:    code,
		Message: r.catalog.Message(r.lang(acceptLanguage), code, args...),
	})
}

func classify(err error) (int, string, []any) {
	var (
		rule       *errs.BusinessRuleError
		notFound   *errs.ObjectNotFoundError
		httpErr    *echo.HTTPError
		validation validator.ValidationErrors
	)

	switch {
	case errors.Is(err, commands.ErrPersistPackages):
		// Storage failures stay internal whatever they wrap.
		return http.StatusInternalServerError, CodeInternal, nil
	case errors.As(err, &rule):
		return ruleStatus(rule), rule.Code, rule.Args
	case errors.As(err, &notFound):
		return http.StatusNotFound, CodeNotFound, []any{notFound.ParamName}
	case errors.As(err, &validation):
		return http.StatusBadRequest, CodeValidation, []any{validation.Error()}
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, CodeValidation, []any{err.Error()}
	case errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError:
		return httpErr.Code, CodeValidation, []any{httpErr.Message}
	default:
		return http.StatusInternalServerError, CodeInternal, nil
	}
}

func ruleStatus(rule *errs.BusinessRuleError) int {
	switch {
	case errors.Is(rule, services.ErrOrderNotFound), errors.Is(rule, services.ErrStaffNotFound):
		return http.StatusNotFound
	case errors.Is(rule, services.ErrFulfillerAlreadyBooked):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
