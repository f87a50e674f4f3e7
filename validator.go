package validware

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a go-playground validator configured to report json
// tag names, so rendered field paths match the wire shape of the request
// body.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// WrapValidationErrors converts a validator.ValidationErrors into Issues and
// leaves every other error (including nil) untouched.
func WrapValidationErrors(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return FromValidationErrors(verrs)
	}
	return err
}

// FromValidationErrors maps engine failures onto Issues, one per field error,
// preserving the engine's order.
func FromValidationErrors(verrs validator.ValidationErrors) Issues {
	iss := make(Issues, 0, len(verrs))
	for _, fe := range verrs {
		iss = append(iss, Issue{
			Location: locationFromNamespace(fe.Namespace()),
			Message:  tagMessage(fe),
			Type:     fe.Tag(),
		})
	}
	return iss
}

// locationFromNamespace parses paths like "User.addresses[0].zip_code". The
// leading struct type name plays the role of the body prefix and is dropped.
func locationFromNamespace(ns string) Location {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	var loc Location
	for _, part := range parts {
		name := part
		for {
			open := strings.Index(name, "[")
			if open < 0 {
				if name != "" {
					loc = append(loc, Key(name))
				}
				break
			}
			if open > 0 {
				loc = append(loc, Key(name[:open]))
			}
			rest := name[open+1:]
			end := strings.Index(rest, "]")
			if end < 0 {
				loc = append(loc, Key(rest))
				break
			}
			tok := rest[:end]
			if n, err := strconv.Atoi(tok); err == nil && n >= 0 {
				loc = append(loc, Index(n))
			} else if tok != "" {
				// map keys stay as field names
				loc = append(loc, Key(tok))
			}
			name = rest[end+1:]
			if name == "" {
				break
			}
		}
	}
	return loc
}

// tagMessage synthesizes a human-readable message for the common builtin
// rules; anything else falls back to naming the rule.
func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "numeric":
		return "must contain only digits"
	case "len":
		return "must have length " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
