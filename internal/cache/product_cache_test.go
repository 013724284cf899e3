package cache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmeco/backend/internal/storage"
)

func TestProductCache(t *testing.T) {
	c := NewProductCache()
	productID := uuid.New()
	product := &storage.Product{ID: productID, Name: "brake pads", Price: 40}

	_, found := c.Get(productID)
	assert.False(t, found)

	c.Set(product)
	got, found := c.Get(productID)
	require.True(t, found)
	assert.Equal(t, "brake pads", got.Name)

	c.Delete(productID)
	_, found = c.Get(productID)
	assert.False(t, found)
}

func TestProductCacheReturnsCopies(t *testing.T) {
	c := NewProductCache()
	productID := uuid.New()

	original := &storage.Product{ID: productID, StockQuantity: 10}
	c.Set(original)

	// Mutating the caller's struct or the returned copy must not leak
	// into the cached value.
	original.StockQuantity = 0
	got, found := c.Get(productID)
	require.True(t, found)
	assert.Equal(t, 10, got.StockQuantity)

	got.StockQuantity = 99
	again, _ := c.Get(productID)
	assert.Equal(t, 10, again.StockQuantity)
}

func TestProductCacheDeleteMissing(t *testing.T) {
	c := NewProductCache()
	c.Delete(uuid.New())
}
