package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps each failing field to a readable message.
// ok is false when err is not a validation error.
func FieldErrors(err error) (fields map[string]string, ok bool) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, false
	}

	fields = make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = FormatFieldError(fe)
	}
	return fields, true
}

// HasTag reports whether err holds a validation failure for tag
func HasTag(err error, tag string) bool {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return false
	}
	for _, fe := range validationErrs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "iso_date":
		return "must be a date in YYYY-MM-DD format"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
