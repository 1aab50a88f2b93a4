package catalog

import (
	"context"
	"errors"

	"github.com/fjod/go_storefront/internal/domain"
)

// ProductCache caches catalog reads. The cached layer treats any miss or
// cache failure as a fall-through to the underlying catalog.
type ProductCache interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	SetAll(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")
