package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fjod/go_storefront/internal/domain"
	"golang.org/x/sync/singleflight"
)

// CachedCatalog layers a ProductCache over another Catalog for the listing
// read path. Single-product lookups always pass through to the source so
// price reads stay live; only the full listing is cached.
type CachedCatalog struct {
	source Catalog
	cache  ProductCache
	sfg    singleflight.Group // Prevents cache stampede
	logger *slog.Logger
}

func NewCachedCatalog(source Catalog, cache ProductCache, logger *slog.Logger) *CachedCatalog {
	return &CachedCatalog{
		source: source,
		cache:  cache,
		logger: logger,
	}
}

func (c *CachedCatalog) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	// Use singleflight to prevent multiple concurrent cache misses refilling
	// the same key.
	v, err, _ := c.sfg.Do(productListKey, func() (interface{}, error) {
		products, err := c.cache.GetAll(ctx)
		if err == nil {
			return products, nil
		}

		if !errors.Is(err, ErrCacheMiss) {
			c.logger.Warn("catalog cache get failed", "error", err) // log cache error but continue
		}

		products, err = c.source.GetAllProducts(ctx)
		if err != nil {
			return nil, err
		}

		go func() {
			if errSet := c.cache.SetAll(context.Background(), products); errSet != nil {
				c.logger.Warn("catalog cache set failed", "error", errSet)
			}
		}()

		return products, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]domain.Product), nil
}

func (c *CachedCatalog) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	return c.source.GetProductByID(ctx, id)
}
