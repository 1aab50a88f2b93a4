package catalog

import (
	"context"
	"sync"

	"github.com/fjod/go_storefront/internal/domain"
)

// MemoryCatalog holds the product list in memory. It backs the server when no
// database path is configured and keeps catalog-dependent tests hermetic.
type MemoryCatalog struct {
	mu       sync.RWMutex
	products []domain.Product
	byID     map[int64]int // product id -> index into products
}

func NewMemoryCatalog(products []domain.Product) *MemoryCatalog {
	c := &MemoryCatalog{
		products: make([]domain.Product, len(products)),
		byID:     make(map[int64]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		c.byID[p.ID] = i
	}
	return c
}

func (c *MemoryCatalog) GetAllProducts(_ context.Context) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

func (c *MemoryCatalog) GetProductByID(_ context.Context, id int64) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := c.products[i]
	return &p, nil
}

// SetPrice updates one product's price. The cart never caches prices, so a
// repricing here is visible on the next total computation.
func (c *MemoryCatalog) SetPrice(id int64, price float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.byID[id]
	if !ok {
		return false
	}
	c.products[i].Price = price
	return true
}

// SetStock updates one product's stock level.
func (c *MemoryCatalog) SetStock(id int64, stock int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.byID[id]
	if !ok {
		return false
	}
	c.products[i].Stock = stock
	return true
}
