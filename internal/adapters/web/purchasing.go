package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"antenna-workshop/internal/app"
)

// poID extracts and parses the {id} URL parameter.
func poID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid purchase order id")
	}
	return id, nil
}

// apiListPurchaseOrders handles GET /api/purchase-orders?limit=N.
func (h *Handler) apiListPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	result, err := h.svc.ListPurchaseOrders(r.Context(), limit)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Orders)
}

// apiCreatePurchaseOrder handles POST /api/purchase-orders.
func (h *Handler) apiCreatePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SupplierName string `json:"supplier_name"`
		Notes        string `json:"notes"`
		Lines        []struct {
			MaterialName string `json:"material_name"`
			Quantity     int64  `json:"quantity"`
		} `json:"lines"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	lines := make([]app.POLineInput, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = app.POLineInput{MaterialName: l.MaterialName, Quantity: l.Quantity}
	}

	claims := authFromContext(r.Context())
	result, err := h.svc.CreatePurchaseOrder(r.Context(), app.CreatePORequest{
		SupplierName: req.SupplierName,
		Notes:        req.Notes,
		UserID:       claims.UserID,
		Lines:        lines,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, result.Order)
}

// apiGetPurchaseOrder handles GET /api/purchase-orders/{id}.
func (h *Handler) apiGetPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, err := poID(r)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.GetPurchaseOrder(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Order)
}

// apiPurchaseOrderWorkbook handles GET /api/purchase-orders/{id}/workbook.
// Streams the order as an xlsx attachment.
func (h *Handler) apiPurchaseOrderWorkbook(w http.ResponseWriter, r *http.Request) {
	id, err := poID(r)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.PurchaseOrderWorkbook(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	_, _ = w.Write(result.Data)
}
