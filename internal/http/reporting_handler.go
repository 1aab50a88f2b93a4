package http

import (
	"net/http"

	"github.com/fjod/go_storefront/internal/reporting"
)

// ReportingHandler serves the dashboard's static datasets.
type ReportingHandler struct{}

func NewReportingHandler() *ReportingHandler {
	return &ReportingHandler{}
}

func (h *ReportingHandler) Orders(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"orders": reporting.Orders(),
	})
}

func (h *ReportingHandler) MonthlySales(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sales": reporting.MonthlySales(),
	})
}
