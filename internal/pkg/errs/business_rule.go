package errs

import (
	"fmt"
	"strings"
)

// BusinessRuleError is a rule violation that carries a message code and positional
// arguments so the transport layer can render a localized text for it.
//
// errors.Is matches the sentinel passed to NewBusinessRuleError:
//
//	err := errs.NewBusinessRuleError(ErrOrderNotFound, "E_ORDER_NOT_FOUND", "#42")
//	errors.Is(err, ErrOrderNotFound) // true
type BusinessRuleError struct {
	Sentinel error
	Code     string
	Args     []any
}

func NewBusinessRuleError(sentinel error, code string, args ...any) *BusinessRuleError {
	return &BusinessRuleError{Sentinel: sentinel, Code: code, Args: args}
}

func (e *BusinessRuleError) Error() string {
	if len(e.Args) == 0 {
		return e.Sentinel.Error()
	}

	parts := make([]string, 0, len(e.Args))
	for _, arg := range e.Args {
		parts = append(parts, sanitize(fmt.Sprint(arg)))
	}
	return fmt.Sprintf("%s: %s", e.Sentinel, strings.Join(parts, ", "))
}

func (e *BusinessRuleError) Unwrap() error {
	return e.Sentinel
}
