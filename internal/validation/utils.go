package validation

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/deppfellow/menu-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Validate returns nil, validator.ValidationErrors (struct tags) or
// CustomValidationErrors (rule lists).
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the struct from path params and body.
//  2. payload.Validate() applies validation rules.
//  3. Returns *errs.HTTPError (400) with field errors if validation fails.
//
// payload must be a pointer so Bind can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) && echoErr.Code != http.StatusBadRequest {
			// 413, 415: keep the transport status
			return err
		}
		return errs.MalformedRequestError()
	}

	if fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.ValidationError(fieldErrors)
	}

	return nil
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) []errs.FieldError {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return nil
}

func extractValidationError(err error) []errs.FieldError {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, e := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []errs.FieldError{{Error: err.Error()}}
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		name := humanize(field)
		var msg string

		switch e.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", name)

		case "min":
			if e.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("%s must be at least %s characters long", name, e.Param())
			} else {
				msg = fmt.Sprintf("%s must be at least %s", name, e.Param())
			}

		case "max":
			if e.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("%s must not exceed %s characters", name, e.Param())
			} else {
				msg = fmt.Sprintf("%s must not exceed %s", name, e.Param())
			}

		case "gt":
			msg = fmt.Sprintf("%s must be greater than %s", name, e.Param())

		case "numeric", "number":
			msg = fmt.Sprintf("%s must be a number", name)

		case "oneof":
			msg = fmt.Sprintf("%s must be one of: %s", name, e.Param())

		default:
			if e.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, e.Tag(), e.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, e.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return fieldErrors
}

// humanize converts snake_case identifiers into Title Case.
//
//	"item_id" -> "Item Id"
func humanize(text string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}
