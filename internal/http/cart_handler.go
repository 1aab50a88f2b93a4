package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	catalog catalog.Catalog
	timeout time.Duration
}

func NewCartHandler(cat catalog.Catalog, timeout time.Duration) *CartHandler {
	return &CartHandler{
		catalog: cat,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartItemDTO struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
}

type CartResponseDTO struct {
	Items []CartItemDTO `json:"items"`
	Count int           `json:"count"`
	Total float64       `json:"total"`
}

func (h *CartHandler) respondCart(ctx context.Context, w http.ResponseWriter, scope *Scope) {
	items, err := scope.Cart.Items(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "cart_unavailable", "failed to load cart")
		return
	}

	dto := CartResponseDTO{Items: make([]CartItemDTO, len(items))}
	for i, item := range items {
		dto.Items[i] = CartItemDTO{
			Product:  toProductResponse(item.Product),
			Quantity: item.Quantity,
		}
		dto.Count += item.Quantity
		dto.Total += float64(item.Quantity) * item.Product.Price
	}

	respondJSON(w, http.StatusOK, dto)
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	h.respondCart(ctx, w, scopeFromContext(r.Context()))
}

// AddItem validates the product against the catalog, applies the
// out-of-stock gate for first adds, then delegates the increment to the
// cart store.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	scope := scopeFromContext(r.Context())

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	product, err := h.catalog.GetProductByID(ctx, req.ProductID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "product_not_found", "product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "catalog_unavailable", "failed to validate product")
		return
	}

	// Out-of-stock products cannot start a new cart line. Lines already in
	// the cart may still be incremented; the store trusts this boundary.
	if product.Stock == 0 && !inCart(scope.Cart.Snapshot(), product.ID) {
		respondError(w, http.StatusConflict, "out_of_stock", "product is out of stock")
		return
	}

	scope.Cart.Add(*product)
	h.respondCart(ctx, w, scope)
}

func inCart(lines []domain.CartLine, productID int64) bool {
	for _, line := range lines {
		if line.ProductID == productID {
			return true
		}
	}
	return false
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	scope := scopeFromContext(r.Context())

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be a positive integer")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Zero or negative collapses the line; absent ids are a no-op. Both are
	// handled inside the store.
	scope.Cart.UpdateQuantity(productID, req.Quantity)
	h.respondCart(ctx, w, scope)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	scope := scopeFromContext(r.Context())

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be a positive integer")
		return
	}

	scope.Cart.Remove(productID)
	h.respondCart(ctx, w, scope)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	scope := scopeFromContext(r.Context())
	scope.Cart.Clear()
	h.respondCart(ctx, w, scope)
}
