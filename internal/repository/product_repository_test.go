package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/RAJRS20/Dot-Decimals/internal/domain"
)

func TestSetDocument(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	floatPtr := func(f float64) *float64 { return &f }

	testCases := []struct {
		name     string
		update   domain.ProductUpdate
		expected bson.M
	}{
		{
			name:     "price only",
			update:   domain.ProductUpdate{Price: floatPtr(599)},
			expected: bson.M{"price": 599.0},
		},
		{
			name: "all fields",
			update: domain.ProductUpdate{
				Name:        strPtr("Kaspersky Plus"),
				Description: strPtr("Reliable antivirus protection"),
				Price:       floatPtr(499),
				Image:       strPtr("http://localhost:9000/catalog/products/k.png"),
			},
			expected: bson.M{
				"name":        "Kaspersky Plus",
				"description": "Reliable antivirus protection",
				"price":       499.0,
				"image":       "http://localhost:9000/catalog/products/k.png",
			},
		},
		{
			name:   "empty string is still a supplied value",
			update: domain.ProductUpdate{Description: strPtr("")},
			expected: bson.M{
				"description": "",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := setDocument(tc.update)

			set, ok := doc["$set"].(bson.M)
			require.True(t, ok)
			assert.Equal(t, tc.expected, set)
		})
	}
}

func TestProductUpdateIsEmpty(t *testing.T) {
	assert.True(t, domain.ProductUpdate{}.IsEmpty())

	price := 1.0
	assert.False(t, domain.ProductUpdate{Price: &price}.IsEmpty())
}
