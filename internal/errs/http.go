package errs

import "strings"

// FieldError represents a single failed validation rule.
// Example:
//
//	{ "field": "name", "error": "Name must be at least 3 characters long" }
type FieldError struct {
	// Field is the payload key the error relates to (e.g. "price").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error().
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message, sent to clients as "error".
//   - Status: HTTP status code.
//   - Errors: ordered per-rule failures (validation).
type HTTPError struct {
	Code    string
	Message string
	Status  int
	Errors  []FieldError
}

// Response is the JSON body written for every error.
//
//	{ "error": "Validation failed", "messages": ["Price must be greater than 0"] }
type Response struct {
	Error    string   `json:"error"`
	Messages []string `json:"messages,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// It does NOT compare Code/Status; use errors.As to inspect those.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// Messages returns the field error messages in rule order.
func (e *HTTPError) Messages() []string {
	if len(e.Errors) == 0 {
		return nil
	}

	messages := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		messages = append(messages, fe.Error)
	}
	return messages
}

// Response converts the error into its client-facing JSON body.
func (e *HTTPError) Response() Response {
	return Response{
		Error:    e.Message,
		Messages: e.Messages(),
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
