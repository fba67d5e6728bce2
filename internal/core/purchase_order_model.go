package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder is a replenishment order sent to a supplier. Unit costs are
// snapshots of the material's cost at creation time; suppliers quote final
// prices on the returned document.
type PurchaseOrder struct {
	ID           int                 `json:"id"`
	PONumber     string              `json:"po_number"`
	SupplierName string              `json:"supplier_name"`
	Total        decimal.Decimal     `json:"total"`
	Notes        *string             `json:"notes,omitempty"`
	CreatedBy    int                 `json:"created_by"`
	CreatedAt    time.Time           `json:"created_at"`
	Lines        []PurchaseOrderLine `json:"lines,omitempty"`
}

// PurchaseOrderLine is one material line on a purchase order. MaterialName
// and Unit are denormalized so the document survives later catalog edits.
type PurchaseOrderLine struct {
	ID           int             `json:"id"`
	OrderID      int             `json:"order_id"`
	LineNumber   int             `json:"line_number"`
	MaterialID   int             `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Unit         string          `json:"unit"`
	Quantity     int64           `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

// PurchaseOrderLineInput holds the fields required to create one PO line.
type PurchaseOrderLineInput struct {
	MaterialName string `json:"material_name"`
	Quantity     int64  `json:"quantity"`
}

// PurchaseOrderService provides purchase order creation and lookup.
type PurchaseOrderService interface {
	// CreatePO creates a purchase order for the named supplier. Each line's
	// material must exist; quantities must be positive. Header and lines are
	// inserted in one transaction.
	CreatePO(ctx context.Context, supplierName string, lines []PurchaseOrderLineInput, notes string, userID int) (*PurchaseOrder, error)

	// GetPO returns a purchase order by ID, including all lines.
	GetPO(ctx context.Context, poID int) (*PurchaseOrder, error)

	// ListPOs returns up to limit purchase orders, newest first, without
	// lines. A non-positive limit falls back to 50.
	ListPOs(ctx context.Context, limit int) ([]PurchaseOrder, error)
}
