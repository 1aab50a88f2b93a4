package catalog

import (
	"context"
	"errors"

	"github.com/fjod/go_storefront/internal/domain"
)

// Catalog defines the read-only product source the rest of the system
// consumes. Consumers define this interface, not the sqlite implementation.
type Catalog interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)
}

var ErrProductNotFound = errors.New("product not found")
