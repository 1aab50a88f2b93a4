package cart

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/domain"
)

// ErrDanglingLine marks a cart line whose product id no longer resolves in
// the catalog. Products are never deleted while referenced, so hitting this
// is a logic fault; the offending line is dropped and logged rather than
// failing the whole cart read.
var ErrDanglingLine = errors.New("cart line references missing product")

// Store owns one session's cart aggregate. Lines never cache prices: totals
// join against the catalog at query time, so a repricing is visible on the
// next read without touching the cart.
//
// One Store instance belongs to one session. The mutex serializes access
// because the HTTP server may multiplex that session's requests across
// goroutines; there is no cross-session sharing.
type Store struct {
	mu      sync.Mutex
	catalog catalog.Catalog
	lines   map[int64]*domain.CartLine
	order   []int64 // insertion order of product ids, for stable display
	logger  *slog.Logger
}

func NewStore(cat catalog.Catalog, logger *slog.Logger) *Store {
	return &Store{
		catalog: cat,
		lines:   make(map[int64]*domain.CartLine),
		logger:  logger,
	}
}

// Add increments the product's line by one, inserting a fresh line at the end
// of the cart when absent. The store trusts its caller: the out-of-stock gate
// for first adds lives at the presentation boundary.
func (s *Store) Add(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if line, ok := s.lines[product.ID]; ok {
		line.Quantity++
		return
	}

	s.lines[product.ID] = &domain.CartLine{ProductID: product.ID, Quantity: 1}
	s.order = append(s.order, product.ID)
}

// Remove deletes the product's line. Removing an absent product is a no-op,
// not an error.
func (s *Store) Remove(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(productID)
}

func (s *Store) remove(productID int64) {
	if _, ok := s.lines[productID]; !ok {
		return
	}
	delete(s.lines, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// UpdateQuantity sets the line's quantity exactly. A quantity of zero or
// below collapses the line. Updating an absent product is a no-op; the store
// performs no stock clamping.
func (s *Store) UpdateQuantity(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.remove(productID)
		return
	}
	if line, ok := s.lines[productID]; ok {
		line.Quantity = quantity
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = make(map[int64]*domain.CartLine)
	s.order = nil
}

// Count returns the sum of quantities across all lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// Total computes the cart total by looking prices up from the catalog at
// query time. Lines whose product has vanished contribute nothing.
func (s *Store) Total(ctx context.Context) (float64, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.Product.Price
	}
	return total, nil
}

// Items joins the cart against the catalog in insertion order. A line whose
// product is missing from the catalog is dropped from the cart and logged;
// user-visible cart integrity matters more than strict failure.
func (s *Store) Items(ctx context.Context) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CartItem, 0, len(s.order))
	var dangling []int64
	for _, id := range s.order {
		line := s.lines[id]
		product, err := s.catalog.GetProductByID(ctx, id)
		if errors.Is(err, catalog.ErrProductNotFound) {
			s.logger.Error("dropping cart line", "product_id", id, "error", ErrDanglingLine)
			dangling = append(dangling, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, domain.CartItem{Product: *product, Quantity: line.Quantity})
	}

	for _, id := range dangling {
		s.remove(id)
	}

	return items, nil
}

// Snapshot returns the cart state in a serializable shape so an external
// collaborator can persist it. The core itself never durably stores carts.
func (s *Store) Snapshot() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]domain.CartLine, 0, len(s.order))
	for _, id := range s.order {
		snapshot = append(snapshot, *s.lines[id])
	}
	return snapshot
}
