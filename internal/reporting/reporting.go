// Package reporting serves the dashboard's static datasets: historical
// orders and monthly sales figures. Nothing in the system mutates these.
package reporting

import "github.com/fjod/go_storefront/internal/domain"

func Orders() []domain.Order {
	return []domain.Order{
		{ID: 1001, Date: "2024-12-20", Customer: "John Doe", Total: 249.98, Status: "Delivered"},
		{ID: 1002, Date: "2024-12-21", Customer: "Jane Smith", Total: 899.99, Status: "Shipped"},
		{ID: 1003, Date: "2024-12-22", Customer: "Bob Johnson", Total: 159.97, Status: "Processing"},
		{ID: 1004, Date: "2024-12-23", Customer: "Alice Williams", Total: 79.99, Status: "Delivered"},
		{ID: 1005, Date: "2024-12-24", Customer: "Charlie Brown", Total: 349.98, Status: "Shipped"},
		{ID: 1006, Date: "2024-12-25", Customer: "Diana Prince", Total: 199.99, Status: "Processing"},
		{ID: 1007, Date: "2024-12-26", Customer: "Ethan Hunt", Total: 89.97, Status: "Pending"},
	}
}

func MonthlySales() []domain.MonthlySales {
	return []domain.MonthlySales{
		{Month: "Jan", Sales: 4200},
		{Month: "Feb", Sales: 3800},
		{Month: "Mar", Sales: 5100},
		{Month: "Apr", Sales: 4600},
		{Month: "May", Sales: 5900},
		{Month: "Jun", Sales: 6200},
		{Month: "Jul", Sales: 5800},
		{Month: "Aug", Sales: 6500},
		{Month: "Sep", Sales: 7100},
		{Month: "Oct", Sales: 6800},
		{Month: "Nov", Sales: 7500},
		{Month: "Dec", Sales: 8200},
	}
}
