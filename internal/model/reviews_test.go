package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRating_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Rating
	}{
		{"numeric", `{"rating":4}`, Rating{Value: 4, Set: true}},
		{"explicit zero", `{"rating":0}`, Rating{Value: 0, Set: true}},
		{"null is absent", `{"rating":null}`, Rating{}},
		{"non-numeric is absent", `{"rating":"five"}`, Rating{}},
		{"missing is absent", `{}`, Rating{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dto CreateReviewDTO
			require.NoError(t, json.Unmarshal([]byte(tt.body), &dto))
			assert.Equal(t, tt.want, dto.Rating)
		})
	}
}
