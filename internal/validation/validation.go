// Package validation contains the logic for validating
// request data.
//
// Payloads describe their checks as ordered Rule lists. Every rule
// runs and every failure is collected, so clients get the complete
// list of problems in one response. Individual predicates lean on the
// `validator` library (min, gt, oneof ...) through Var.
package validation

import (
	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New()

// Rule pairs a predicate over payload T with the message reported
// when it does not hold.
type Rule[T any] struct {
	Field   string
	Message string
	Check   func(T) bool
}

// Run evaluates every rule against payload in order.
//
// It returns nil when all rules pass, otherwise CustomValidationErrors
// holding one entry per failed rule.
func Run[T any](payload T, rules []Rule[T]) error {
	var failures CustomValidationErrors

	for _, rule := range rules {
		if !rule.Check(payload) {
			failures = append(failures, CustomValidationError{
				Field:   rule.Field,
				Message: rule.Message,
			})
		}
	}

	if len(failures) == 0 {
		return nil
	}
	return failures
}

// Var reports whether value satisfies the validator tag, e.g. "min=3".
func Var(value any, tag string) bool {
	return validate.Var(value, tag) == nil
}

// Struct validates a struct using its `validate:"..."` tags.
func Struct(v any) error {
	return validate.Struct(v)
}
