// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"strings"

	domainerrors "thames/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// EchoValidator validates bound request structs via `validate` struct tags.
type EchoValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the echo server.
func New() *EchoValidator {
	return &EchoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Tag failures surface as a 400 with the
// failing fields in the details.
func (v *EchoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if errors, ok := err.(playground.ValidationErrors); ok {
		fieldErrs = errors
	} else {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		details = append(details, fieldErr.Field()+" failed on the '"+fieldErr.Tag()+"' rule")
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}
