package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallback(t *testing.T) {
	products := Fallback()

	require.Len(t, products, 3)

	assert.Equal(t, "Kaspersky Plus", products[0].Name)
	assert.Equal(t, 499.0, products[0].Price)
	assert.Equal(t, "Dot-Decimals Firewall", products[1].Name)
	assert.Equal(t, 1299.0, products[1].Price)
	assert.Equal(t, "Enterprise VPN", products[2].Name)
	assert.Equal(t, 2999.0, products[2].Price)

	for _, p := range products {
		assert.False(t, p.ID.IsZero())
		require.NotNil(t, p.Image)
		assert.NotEmpty(t, *p.Image)
		assert.False(t, p.CreatedAt.IsZero())
	}
}

func TestFallbackReturnsFreshSlice(t *testing.T) {
	first := Fallback()
	first[0].Name = "mutated"

	second := Fallback()
	assert.Equal(t, "Kaspersky Plus", second[0].Name)
}
