package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  Field[string]   `json:"name"`
	Price Field[float64]  `json:"price"`
	Tags  Field[[]string] `json:"tags"`
}

func TestFieldUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValid bool
		wantValue float64
	}{
		{name: "absent", body: `{}`, wantSet: false, wantValid: false},
		{name: "number", body: `{"price": 4.5}`, wantSet: true, wantValid: true, wantValue: 4.5},
		{name: "zero", body: `{"price": 0}`, wantSet: true, wantValid: true, wantValue: 0},
		{name: "null", body: `{"price": null}`, wantSet: true, wantValid: false},
		{name: "string instead of number", body: `{"price": "cheap"}`, wantSet: true, wantValid: false},
		{name: "object instead of number", body: `{"price": {"amount": 3}}`, wantSet: true, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s sample
			require.NoError(t, json.Unmarshal([]byte(tt.body), &s))

			assert.Equal(t, tt.wantSet, s.Price.Set)
			assert.Equal(t, tt.wantValid, s.Price.Valid)
			assert.Equal(t, tt.wantValid, s.Price.Present())
			if tt.wantValid {
				assert.Equal(t, tt.wantValue, s.Price.Value)
			}
		})
	}
}

func TestFieldMismatchDoesNotAffectSiblings(t *testing.T) {
	var s sample
	require.NoError(t, json.Unmarshal([]byte(`{"name": 12, "price": 3.5, "tags": ["a", 2]}`), &s))

	assert.True(t, s.Name.Set)
	assert.False(t, s.Name.Valid)

	assert.True(t, s.Price.Present())
	assert.Equal(t, 3.5, s.Price.Value)

	assert.True(t, s.Tags.Set)
	assert.False(t, s.Tags.Valid)
}

func TestFieldMarshal(t *testing.T) {
	out, err := json.Marshal(sample{Name: Of("soup"), Tags: Of([]string{"hot"})})
	require.NoError(t, err)

	assert.JSONEq(t, `{"name":"soup","price":null,"tags":["hot"]}`, string(out))
}
