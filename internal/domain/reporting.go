package domain

// Order is a historical order row shown on the dashboard. Orders are static
// display data in this system; nothing here places or mutates them.
type Order struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	Customer string  `json:"customer"`
	Total    float64 `json:"total"`
	Status   string  `json:"status"`
}

// MonthlySales is one month's aggregate sales figure for the dashboard chart.
type MonthlySales struct {
	Month string `json:"month"`
	Sales int    `json:"sales"`
}
