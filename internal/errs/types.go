package errs

import (
	"net/http"
)

const (
	// CodeValidationFailed marks payloads rejected by the validation layer.
	CodeValidationFailed = "VALIDATION_FAILED"

	// CodeMalformedRequest marks bodies that are not valid JSON.
	CodeMalformedRequest = "MALFORMED_REQUEST"

	// CodeMenuItemNotFound marks lookups for ids absent from the menu.
	CodeMenuItemNotFound = "MENU_ITEM_NOT_FOUND"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors (validation errors)
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Supports optional custom code override similar to NewBadRequestError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the underlying error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// ValidationError builds the aggregated 400 returned when one or more
// validation rules fail. Messages keep the order the rules ran in.
func ValidationError(fieldErrors []FieldError) *HTTPError {
	code := CodeValidationFailed
	return NewBadRequestError("Validation failed", &code, fieldErrors)
}

// MalformedRequestError is returned when the body cannot be decoded as JSON.
func MalformedRequestError() *HTTPError {
	code := CodeMalformedRequest
	return NewBadRequestError("Malformed JSON request body", &code, nil)
}

// MenuItemNotFoundError is returned for get/update/delete on an unknown id.
func MenuItemNotFoundError() *HTTPError {
	code := CodeMenuItemNotFound
	return NewNotFoundError("Menu item not found", &code)
}
