package domain

// CartLine is one product's quantity entry within a cart. Quantity is always
// >= 1: a line that would drop to zero is removed instead of kept.
type CartLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartItem joins a cart line against the catalog for display.
type CartItem struct {
	Product  Product
	Quantity int
}
