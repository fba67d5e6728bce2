package web

import (
	"net/http"
	"strconv"
)

// reportDays parses the ?days=N query parameter; 0 lets the service default apply.
func reportDays(r *http.Request) int {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	return days
}

// apiProductionSummary handles GET /api/reports/production-summary?days=N.
func (h *Handler) apiProductionSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ProductionSummary(r.Context(), reportDays(r))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// apiMaterialUsage handles GET /api/reports/material-usage?days=N.
func (h *Handler) apiMaterialUsage(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.MaterialUsage(r.Context(), reportDays(r))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// apiReorderReport handles GET /api/reports/reorder.
func (h *Handler) apiReorderReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ReorderReport(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Lines)
}
