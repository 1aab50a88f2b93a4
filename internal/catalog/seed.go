package catalog

import "github.com/fjod/go_storefront/internal/domain"

// Categories lists the storefront's filter tabs. "All" means unfiltered.
var Categories = []string{"All", "Electronics", "Furniture", "Stationery", "Accessories"}

// SeedProducts is the demo catalog dataset. The sqlite migrations seed the
// same rows; this copy backs the in-memory catalog.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Laptop Computer", Price: 899.99, Category: "Electronics", ImageURL: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=500&auto=format&fit=crop&q=60", Stock: 15, Rating: 4.5, Sales: 234},
		{ID: 2, Name: "Wireless Mouse", Price: 29.99, Category: "Electronics", ImageURL: "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500&auto=format&fit=crop&q=60", Stock: 45, Rating: 4.2, Sales: 567},
		{ID: 3, Name: "Keyboard", Price: 49.99, Category: "Electronics", ImageURL: "https://images.unsplash.com/photo-1595225476474-87563907a212?w=500&auto=format&fit=crop&q=60", Stock: 32, Rating: 4.7, Sales: 423},
		{ID: 4, Name: "Office Chair", Price: 199.99, Category: "Furniture", ImageURL: "https://images.unsplash.com/photo-1505843490538-5133c6c7d0e1?w=500&auto=format&fit=crop&q=60", Stock: 8, Rating: 4.3, Sales: 145},
		{ID: 5, Name: "Desk Lamp", Price: 39.99, Category: "Furniture", ImageURL: "https://images.unsplash.com/photo-1507473888900-52e1adad5488?w=500&auto=format&fit=crop&q=60", Stock: 23, Rating: 4.0, Sales: 289},
		{ID: 6, Name: "Monitor", Price: 299.99, Category: "Electronics", ImageURL: "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?w=500&auto=format&fit=crop&q=60", Stock: 12, Rating: 4.8, Sales: 678},
		{ID: 7, Name: "Notebook", Price: 9.99, Category: "Stationery", ImageURL: "https://images.unsplash.com/photo-1544816155-12df9643f363?w=500&auto=format&fit=crop&q=60", Stock: 100, Rating: 3.9, Sales: 891},
		{ID: 8, Name: "Pen Set", Price: 14.99, Category: "Stationery", ImageURL: "https://images.unsplash.com/photo-1585336261022-680e295ce3fe?w=500&auto=format&fit=crop&q=60", Stock: 67, Rating: 4.1, Sales: 456},
		{ID: 9, Name: "USB Cable", Price: 12.99, Category: "Electronics", ImageURL: "https://images.unsplash.com/photo-1610465299993-e6675c9f9efa?w=500&auto=format&fit=crop&q=60", Stock: 89, Rating: 4.4, Sales: 723},
		{ID: 10, Name: "Water Bottle", Price: 19.99, Category: "Accessories", ImageURL: "https://images.unsplash.com/photo-1602143407151-5111910e47d3?w=500&auto=format&fit=crop&q=60", Stock: 54, Rating: 4.6, Sales: 534},
		{ID: 11, Name: "Backpack", Price: 59.99, Category: "Accessories", ImageURL: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500&auto=format&fit=crop&q=60", Stock: 28, Rating: 4.5, Sales: 267},
		{ID: 12, Name: "Headphones", Price: 79.99, Category: "Electronics", ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&auto=format&fit=crop&q=60", Stock: 19, Rating: 4.9, Sales: 845},
		{ID: 13, Name: "Smartphone", Price: 699.99, Category: "Electronics", ImageURL: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=500&auto=format&fit=crop&q=60", Stock: 7, Rating: 4.7, Sales: 412},
		{ID: 14, Name: "Tablet", Price: 399.99, Category: "Electronics", ImageURL: "https://images.unsplash.com/photo-1561154464-82e9adf32764?w=500&auto=format&fit=crop&q=60", Stock: 14, Rating: 4.4, Sales: 298},
		{ID: 15, Name: "Desk Organizer", Price: 24.99, Category: "Stationery", ImageURL: "https://images.unsplash.com/photo-1484480974693-6ca0a78fb36b?w=500&auto=format&fit=crop&q=60", Stock: 42, Rating: 4.2, Sales: 356},
	}
}
