package web

import (
	"net/http"

	"antenna-workshop/internal/core"
)

// apiInterpretCommand handles POST /api/assistant/interpret. The returned
// command is a proposal only; nothing is applied until the client confirms
// via /api/assistant/execute.
func (h *Handler) apiInterpretCommand(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Text == "" {
		writeError(w, r, "text is required", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result, err := h.svc.InterpretCommand(r.Context(), req.Text)
	if err != nil {
		writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

// apiExecuteCommand handles POST /api/assistant/execute.
func (h *Handler) apiExecuteCommand(w http.ResponseWriter, r *http.Request) {
	var cmd core.StockCommand
	if !decodeJSON(w, r, &cmd) {
		return
	}

	claims := authFromContext(r.Context())
	outcome, err := h.svc.ExecuteCommand(r.Context(), cmd, claims.UserID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, outcome)
}
