// Package middleware holds the framework-agnostic pieces shared by the echo
// and gin integrations: the setup configuration and the classification of
// errors into validation failures.
package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"
	validware "github.com/reoring/validware"
	"github.com/reoring/validware/openapi"
)

// DefaultSchemaPath is where the patched document is served unless
// configured otherwise.
const DefaultSchemaPath = "/openapi.json"

// Config controls how an integration answers validation failures.
type Config struct {
	// ErrorCode is the top-level code in the envelope.
	ErrorCode string
	// IncludeValidatorErrors also intercepts raw engine errors
	// (validator.ValidationErrors) that escape a handler unwrapped, in
	// addition to Issues produced by the integration itself.
	IncludeValidatorErrors bool
	// Schema enables the patched schema endpoint when set.
	Schema openapi.Provider
	// SchemaPath is the route the patched document is served at.
	SchemaPath string
}

// NewConfig returns the recommended defaults: the standard error code,
// validator errors included, schema served at DefaultSchemaPath once a
// Provider is set.
func NewConfig() Config {
	return Config{
		ErrorCode:              validware.DefaultErrorCode,
		IncludeValidatorErrors: true,
		SchemaPath:             DefaultSchemaPath,
	}
}

// Default fills empty string fields. Boolean fields are taken as given;
// start from NewConfig to opt into validator interception.
func (c Config) Default() Config {
	if c.ErrorCode == "" {
		c.ErrorCode = validware.DefaultErrorCode
	}
	if c.SchemaPath == "" {
		c.SchemaPath = DefaultSchemaPath
	}
	return c
}

// Classify extracts the validation issues carried by err. ok is false when
// err is not a validation failure under this configuration.
func (c Config) Classify(err error) (validware.Issues, bool) {
	if err == nil {
		return nil, false
	}
	if iss, ok := validware.AsIssues(err); ok {
		return iss, true
	}
	if c.IncludeValidatorErrors {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return validware.FromValidationErrors(verrs), true
		}
	}
	return nil, false
}
