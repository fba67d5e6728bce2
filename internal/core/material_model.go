package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material is one raw-material row in the ledger. CurrentStock is the
// authoritative on-hand quantity; it is never negative after a committed
// mutation.
type Material struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"` // unit-of-measure label, e.g. "pcs"
	CurrentStock int64           `json:"current_stock"`
	ReorderPoint int64           `json:"reorder_point"`
	UnitCost     decimal.Decimal `json:"unit_cost"` // last known purchase cost per unit
	UpdatedAt    time.Time       `json:"updated_at"`
}

// StockStatus classifies a material's level against its reorder point.
// Computed on read; never stored.
type StockStatus string

const (
	StockCritical StockStatus = "critical" // stock <= reorderPoint
	StockWarning  StockStatus = "warning"  // reorderPoint < stock <= reorderPoint*attention
	StockOK       StockStatus = "ok"
)

// MovementType labels a stock_movements audit row.
type MovementType string

const (
	MovementProduction MovementType = "PRODUCTION"
	MovementRestock    MovementType = "RESTOCK"
	MovementAdjustment MovementType = "ADJUSTMENT"
)

// StockMovement is one audited mutation of a material's stock.
type StockMovement struct {
	ID         int          `json:"id"`
	MaterialID int          `json:"material_id"`
	Type       MovementType `json:"type"`
	Delta      int64        `json:"delta"` // signed change; ADJUSTMENT rows store newValue - oldValue
	UserID     *int         `json:"user_id,omitempty"`
	Note       string       `json:"note"`
	MovedAt    time.Time    `json:"moved_at"`
}
