package web

import (
	"net/http"

	"antenna-workshop/internal/app"
)

// apiListMaterials handles GET /api/materials.
func (h *Handler) apiListMaterials(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListMaterials(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Materials)
}

// apiGetMaterial handles GET /api/materials/{name}.
func (h *Handler) apiGetMaterial(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetMaterial(r.Context(), materialName(r))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Material)
}

// apiRestock handles POST /api/materials/{name}/restock.
func (h *Handler) apiRestock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int64 `json:"quantity"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	claims := authFromContext(r.Context())
	result, err := h.svc.Restock(r.Context(), app.StockChangeRequest{
		MaterialName: materialName(r),
		Quantity:     req.Quantity,
		UserID:       claims.UserID,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Material)
}

// apiSetStock handles PUT /api/materials/{name}/stock.
func (h *Handler) apiSetStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value int64 `json:"value"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	claims := authFromContext(r.Context())
	result, err := h.svc.SetStock(r.Context(), app.StockChangeRequest{
		MaterialName: materialName(r),
		Quantity:     req.Value,
		UserID:       claims.UserID,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Material)
}
