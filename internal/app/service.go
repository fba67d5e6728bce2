package app

import (
	"context"

	"antenna-workshop/internal/core"
)

// ApplicationService is the single interface all UI adapters (CLI, Web) call.
// It decouples presentation from business logic. Implementations must contain
// no fmt.Println, no ANSI codes, and no display logic of any kind.
type ApplicationService interface {
	// ListMaterials returns all materials with their stock status.
	ListMaterials(ctx context.Context) (*MaterialListResult, error)

	// GetMaterial returns a single material by name.
	GetMaterial(ctx context.Context, name string) (*MaterialResult, error)

	// Produce builds quantity units of the named product, consuming materials
	// per its recipe. A non-positive quantity is a silent no-op.
	Produce(ctx context.Context, req ProduceRequest) (*ProduceResult, error)

	// ProductionLog returns a user's production history, newest first.
	ProductionLog(ctx context.Context, userID, limit int) (*ProductionLogResult, error)

	// Restock adds a positive quantity to a material's stock.
	Restock(ctx context.Context, req StockChangeRequest) (*MaterialResult, error)

	// SetStock overwrites a material's stock with an absolute value.
	SetStock(ctx context.Context, req StockChangeRequest) (*MaterialResult, error)

	// ListProducts returns the producible product names, sorted.
	ListProducts(ctx context.Context) (*ProductListResult, error)

	// GetRecipe returns a product's per-unit material requirements.
	GetRecipe(ctx context.Context, productName string) (*RecipeResult, error)

	// ReorderReport returns materials at or below the attention threshold,
	// each with its status and a suggested reorder quantity.
	ReorderReport(ctx context.Context) (*ReorderResult, error)

	// ProductionSummary totals production per product over the last `days`.
	ProductionSummary(ctx context.Context, days int) (*ProductionSummaryResult, error)

	// MaterialUsage totals material consumption over the last `days`.
	MaterialUsage(ctx context.Context, days int) (*MaterialUsageResult, error)

	// CreatePurchaseOrder creates a purchase order from material lines.
	CreatePurchaseOrder(ctx context.Context, req CreatePORequest) (*PurchaseOrderResult, error)

	// GetPurchaseOrder returns a purchase order by ID, with lines.
	GetPurchaseOrder(ctx context.Context, poID int) (*PurchaseOrderResult, error)

	// ListPurchaseOrders returns recent purchase orders, newest first.
	ListPurchaseOrders(ctx context.Context, limit int) (*PurchaseOrderListResult, error)

	// PurchaseOrderWorkbook renders a purchase order as an xlsx download.
	PurchaseOrderWorkbook(ctx context.Context, poID int) (*WorkbookResult, error)

	// InterpretCommand sends a natural-language floor instruction to the AI
	// agent and returns a proposed stock command for user confirmation.
	// It never mutates the ledger.
	InterpretCommand(ctx context.Context, text string) (*AssistantResult, error)

	// ExecuteCommand applies a previously proposed stock command.
	// Must only be called after explicit user approval.
	ExecuteCommand(ctx context.Context, cmd core.StockCommand, userID int) (*CommandOutcome, error)

	// AuthenticateUser verifies credentials and returns a session on success.
	AuthenticateUser(ctx context.Context, username, password string) (*UserSession, error)

	// GetUser returns user profile by ID.
	GetUser(ctx context.Context, userID int) (*UserResult, error)
}
