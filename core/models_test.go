package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductSearchText(t *testing.T) {
	tests := []struct {
		name     string
		product  Product
		expected string
	}{
		{
			name: "all fields populated",
			product: Product{
				Name:        "Red Oversized Tshirt",
				Description: "casual summer",
				Category:    "T-Shirts",
				Brand:       "Snitch",
			},
			expected: "red oversized tshirt casual summer t-shirts snitch",
		},
		{
			name:     "empty product",
			product:  Product{},
			expected: "   ",
		},
		{
			name: "mixed case collapses to lowercase",
			product: Product{
				Name:  "NAVY Polo",
				Brand: "FUAARK",
			},
			expected: "navy polo   fuaark",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.product.SearchText())
		})
	}
}
