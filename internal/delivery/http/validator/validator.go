// Package validator plugs go-playground/validator into echo.
package validator

import (
	domainerrors "planner/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator.Validate so echo's c.Validate works
// on request DTOs with `validate` tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as the generic
// validation error so the envelope stays consistent.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
