package cache

import (
	"sync"

	"github.com/google/uuid"

	"github.com/shopmeco/backend/internal/metrics"
	"github.com/shopmeco/backend/internal/storage"
)

// ProductCache is an in-memory read-through cache over the product
// catalog. Writes go to the database first; handlers update the cache
// after a successful write.
type ProductCache struct {
	mu    sync.RWMutex
	cache map[uuid.UUID]*storage.Product
}

func NewProductCache() *ProductCache {
	return &ProductCache{
		cache: make(map[uuid.UUID]*storage.Product),
	}
}

func (c *ProductCache) Get(id uuid.UUID) (*storage.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	product, found := c.cache[id]
	if !found {
		return nil, false
	}
	productCopy := *product
	return &productCopy, true
}

func (c *ProductCache) Set(product *storage.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	productCopy := *product
	c.cache[product.ID] = &productCopy
	metrics.ProductCacheItems.Set(float64(len(c.cache)))
}

func (c *ProductCache) Delete(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[id]; found {
		delete(c.cache, id)
		metrics.ProductCacheItems.Set(float64(len(c.cache)))
	}
}
