package echomw

import (
	"github.com/go-playground/validator/v10"
	validware "github.com/reoring/validware"
)

// Validator adapts a validware-configured go-playground validator to echo's
// Validator interface, so c.Validate failures already carry Issues when they
// reach the error handler.
type Validator struct {
	v *validator.Validate
}

// NewValidator returns a Validator reporting json tag names.
func NewValidator() *Validator {
	return &Validator{v: validware.NewValidator()}
}

// Validate implements echo.Validator.
func (va *Validator) Validate(i any) error {
	return validware.WrapValidationErrors(va.v.Struct(i))
}

// Engine exposes the underlying validator for custom rule registration.
func (va *Validator) Engine() *validator.Validate { return va.v }
