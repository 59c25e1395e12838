// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. FieldError for validation, HTTPError for API responses)
// so clients receive consistent JSON error bodies:
//
//	{ "error": "Menu item not found" }
//	{ "error": "Validation failed", "messages": [...] }
package errs
