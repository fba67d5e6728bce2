package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"antenna-workshop/internal/app"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc       app.ApplicationService
	router    chi.Router
	jwtSecret string
	tokenTTL  time.Duration
	log       *slog.Logger
}

// Options configures the HTTP handler.
type Options struct {
	AllowedOrigins string
	JWTSecret      string
	TokenTTL       time.Duration
	ExposeMetrics  bool
	Log            *slog.Logger
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, opts Options) http.Handler {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	h := &Handler{
		svc:       svc,
		jwtSecret: opts.JWTSecret,
		tokenTTL:  opts.TokenTTL,
		log:       opts.Log,
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(opts.Log))
	r.Use(Recoverer(opts.Log))
	r.Use(CORS(opts.AllowedOrigins))

	// ── Health and metrics (public) ──────────────────────────────────────────
	r.Get("/api/health", h.health)
	if opts.ExposeMetrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	// ── Auth (public API) ─────────────────────────────────────────────────────
	r.Post("/api/auth/login", h.login)
	r.Post("/api/auth/logout", h.logout)

	// ── Protected API routes (return 401 JSON if unauthenticated) ────────────
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)
		r.Use(RequestBodyLimit(1 << 20)) // 1 MB

		// Auth
		r.Get("/api/auth/me", h.me)

		// Materials
		r.Get("/api/materials", h.apiListMaterials)
		r.Get("/api/materials/{name}", h.apiGetMaterial)
		r.Post("/api/materials/{name}/restock", h.apiRestock)
		r.Put("/api/materials/{name}/stock", h.apiSetStock)

		// Products and recipes
		r.Get("/api/products", h.apiListProducts)
		r.Get("/api/products/{name}/recipe", h.apiGetRecipe)

		// Production
		r.Post("/api/production", h.apiProduce)
		r.Get("/api/production/log", h.apiProductionLog)

		// Reports
		r.Get("/api/reports/production-summary", h.apiProductionSummary)
		r.Get("/api/reports/material-usage", h.apiMaterialUsage)
		r.Get("/api/reports/reorder", h.apiReorderReport)

		// Purchase orders
		r.Get("/api/purchase-orders", h.apiListPurchaseOrders)
		r.Post("/api/purchase-orders", h.apiCreatePurchaseOrder)
		r.Get("/api/purchase-orders/{id}", h.apiGetPurchaseOrder)
		r.Get("/api/purchase-orders/{id}/workbook", h.apiPurchaseOrderWorkbook)

		// Assistant
		r.Post("/api/assistant/interpret", h.apiInterpretCommand)
		r.Post("/api/assistant/execute", h.apiExecuteCommand)
	})

	h.router = r
	return r
}

// health returns service status.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}

// materialName extracts the {name} URL parameter.
func materialName(r *http.Request) string {
	return chi.URLParam(r, "name")
}

// decodeJSON decodes the request body into v and returns false + writes an appropriate
// error response on failure. Returns HTTP 413 when the body exceeds the size limit set
// by RequestBodyLimit middleware; HTTP 400 for all other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
