package domain

// Product is a read-only catalog record. The core never mutates one; price
// and stock are whatever the catalog reports at lookup time.
type Product struct {
	ID       int64
	Name     string
	Price    float64
	Category string
	ImageURL string
	Stock    int
	Rating   float64
	Sales    int
}
