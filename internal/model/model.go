// Package model holds the domain types shared by the handler,
// service and repository layers.
//
// Request payloads live next to the entity they describe
// (e.g. model/menu) and implement validation.Validatable.
package model

import (
	"bytes"
	"encoding/json"
)

// Field is a JSON value that remembers whether it was present in the
// payload and whether it decoded into T.
//
// A type mismatch (e.g. "price": "cheap") does not fail the whole body
// decode. It leaves Valid false so the validation layer can report it as
// a field error alongside every other failed rule.
type Field[T any] struct {
	Value T
	Set   bool
	Valid bool
}

// Of returns a present, valid Field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true, Valid: true}
}

// UnmarshalJSON records presence. JSON null counts as present but invalid.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	f.Valid = false

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}

	f.Value = v
	f.Valid = true
	return nil
}

// MarshalJSON writes the value, or null when absent or invalid.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Present reports whether the field was supplied and decoded into T.
func (f Field[T]) Present() bool {
	return f.Set && f.Valid
}
