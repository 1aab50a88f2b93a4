package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCatalog_Seed(t *testing.T) {
	cat := NewMemoryCatalog(SeedProducts())
	ctx := context.Background()

	products, err := cat.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 15)

	// IDs are unique within the catalog.
	seen := make(map[int64]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate product id %d", p.ID)
		seen[p.ID] = true
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.Stock, 0)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
	}
}

func TestMemoryCatalog_GetProductByID(t *testing.T) {
	cat := NewMemoryCatalog(SeedProducts())
	ctx := context.Background()

	p, err := cat.GetProductByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Laptop Computer", p.Name)

	_, err = cat.GetProductByID(ctx, 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestMemoryCatalog_SetPrice(t *testing.T) {
	cat := NewMemoryCatalog(SeedProducts())
	ctx := context.Background()

	require.True(t, cat.SetPrice(1, 1099.99))
	p, err := cat.GetProductByID(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1099.99, p.Price, 1e-9)

	assert.False(t, cat.SetPrice(999, 1.0))
}

func TestMemoryCatalog_ReturnsCopies(t *testing.T) {
	cat := NewMemoryCatalog(SeedProducts())
	ctx := context.Background()

	products, err := cat.GetAllProducts(ctx)
	require.NoError(t, err)
	products[0].Price = 0

	again, err := cat.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 899.99, again[0].Price, 1e-9)
}
