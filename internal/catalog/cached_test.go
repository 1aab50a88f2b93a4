package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	mu    sync.Mutex
	calls int
	list  []domain.Product
	err   error
}

func (s *countingSource) GetAllProducts(context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func (s *countingSource) GetProductByID(_ context.Context, id int64) (*domain.Product, error) {
	for _, p := range s.list {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

type mapCache struct {
	mu       sync.Mutex
	products []domain.Product
	getErr   error
}

func (c *mapCache) GetAll(context.Context) ([]domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	if c.products == nil {
		return nil, ErrCacheMiss
	}
	return c.products, nil
}

func (c *mapCache) SetAll(_ context.Context, products []domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = products
	return nil
}

func (c *mapCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = nil
	return nil
}

func (c *mapCache) filled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.products != nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCachedCatalog_MissFillsCache(t *testing.T) {
	source := &countingSource{list: []domain.Product{{ID: 1, Name: "Laptop Computer"}}}
	cache := &mapCache{}
	cat := NewCachedCatalog(source, cache, testLogger())

	got, err := cat.GetAllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	// The fill happens off the request path.
	assert.Eventually(t, cache.filled, time.Second, 10*time.Millisecond)
}

func TestCachedCatalog_HitSkipsSource(t *testing.T) {
	source := &countingSource{list: []domain.Product{{ID: 1}}}
	cache := &mapCache{products: []domain.Product{{ID: 1}, {ID: 2}}}
	cat := NewCachedCatalog(source, cache, testLogger())

	got, err := cat.GetAllProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Zero(t, source.calls)
}

func TestCachedCatalog_CacheFailureFallsThrough(t *testing.T) {
	source := &countingSource{list: []domain.Product{{ID: 1}}}
	cache := &mapCache{getErr: errors.New("redis down")}
	cat := NewCachedCatalog(source, cache, testLogger())

	got, err := cat.GetAllProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, source.calls)
}

func TestCachedCatalog_SourceErrorPropagates(t *testing.T) {
	source := &countingSource{err: errors.New("db down")}
	cat := NewCachedCatalog(source, &mapCache{}, testLogger())

	_, err := cat.GetAllProducts(context.Background())
	assert.Error(t, err)
}

func TestCachedCatalog_ByIDBypassesCache(t *testing.T) {
	source := &countingSource{list: []domain.Product{{ID: 1, Price: 10}}}
	cache := &mapCache{products: []domain.Product{{ID: 1, Price: 999}}}
	cat := NewCachedCatalog(source, cache, testLogger())

	p, err := cat.GetProductByID(context.Background(), 1)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, p.Price, 1e-9, "single lookups must read live data, not the cached listing")
}
