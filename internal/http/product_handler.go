package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalog catalog.Catalog
	timeout time.Duration
}

func NewProductHandler(cat catalog.Catalog, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		catalog: cat,
		timeout: timeout,
	}
}

type ProductResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	ImageURL string  `json:"image_url"`
	Stock    int     `json:"stock"`
	Rating   float64 `json:"rating"`
	Sales    int     `json:"sales"`
}

type ProductsResponse struct {
	Products   []ProductResponse `json:"products"`
	Categories []string          `json:"categories"`
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		ImageURL: p.ImageURL,
		Stock:    p.Stock,
		Rating:   p.Rating,
		Sales:    p.Sales,
	}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	all, err := h.catalog.GetAllProducts(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "catalog_unavailable", "failed to load products")
		return
	}

	category := r.URL.Query().Get("category")
	products := make([]ProductResponse, 0, len(all))
	for _, p := range all {
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		products = append(products, toProductResponse(p))
	}

	respondJSON(w, http.StatusOK, &ProductsResponse{
		Products:   products,
		Categories: catalog.Categories,
	})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be a positive integer")
		return
	}

	product, err := h.catalog.GetProductByID(ctx, id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "product_not_found", "product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "catalog_unavailable", "failed to load product")
		return
	}

	respondJSON(w, http.StatusOK, toProductResponse(*product))
}
