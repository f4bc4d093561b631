package http

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 .-]{5,30}$`)

// requestValidator plugs go-playground validation tags into echo's Context.Validate.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() (*requestValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		return nil, err
	}
	return &requestValidator{validate: v}, nil
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
