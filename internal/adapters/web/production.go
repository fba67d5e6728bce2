package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"antenna-workshop/internal/app"
)

// apiListProducts handles GET /api/products.
func (h *Handler) apiListProducts(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListProducts(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Products)
}

// apiGetRecipe handles GET /api/products/{name}/recipe.
func (h *Handler) apiGetRecipe(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetRecipe(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// apiProduce handles POST /api/production.
func (h *Handler) apiProduce(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductName string `json:"product_name"`
		Quantity    int64  `json:"quantity"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ProductName == "" {
		writeError(w, r, "product_name is required", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	claims := authFromContext(r.Context())
	result, err := h.svc.Produce(r.Context(), app.ProduceRequest{
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		UserID:      claims.UserID,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if result.Record == nil {
		// Non-positive quantity: nothing happened, nothing to report.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, result)
}

// apiProductionLog handles GET /api/production/log?limit=N.
func (h *Handler) apiProductionLog(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	claims := authFromContext(r.Context())
	result, err := h.svc.ProductionLog(r.Context(), claims.UserID, limit)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Records)
}
