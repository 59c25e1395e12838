// Package utils contains small helper functions used across the project.
package utils

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// IndentJSON re-formats raw JSON with two-space indentation.
//
// An empty body renders as "{}", which is what a JSON endpoint sees
// when a client sends no payload.
func IndentJSON(raw []byte) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "{}", nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, trimmed, "", "  "); err != nil {
		return "", errors.Wrap(err, "body is not valid JSON")
	}
	return out.String(), nil
}
