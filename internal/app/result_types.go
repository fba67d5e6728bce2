package app

import "antenna-workshop/internal/core"

// MaterialView is a material decorated with its stock status.
type MaterialView struct {
	core.Material
	Status core.StockStatus `json:"status"`
}

// MaterialResult is returned by single-material operations.
type MaterialResult struct {
	Material MaterialView `json:"material"`
}

// MaterialListResult is returned by ListMaterials.
type MaterialListResult struct {
	Materials []MaterialView `json:"materials"`
}

// ProduceResult is returned by Produce. Record and Materials are nil for a
// non-positive quantity no-op.
type ProduceResult struct {
	Record    *core.ProductionRecord `json:"record,omitempty"`
	Materials []core.Material        `json:"materials,omitempty"`
}

// ProductionLogResult is returned by ProductionLog.
type ProductionLogResult struct {
	Records []core.ProductionRecord `json:"records"`
}

// ProductListResult is returned by ListProducts.
type ProductListResult struct {
	Products []string `json:"products"`
}

// RecipeResult is returned by GetRecipe.
type RecipeResult struct {
	ProductName string      `json:"product_name"`
	Recipe      core.Recipe `json:"recipe"`
}

// ReorderLine is one material needing attention, with advice.
type ReorderLine struct {
	Material     core.Material    `json:"material"`
	Status       core.StockStatus `json:"status"`
	SuggestedQty int64            `json:"suggested_qty"`
}

// ReorderResult is returned by ReorderReport.
type ReorderResult struct {
	Lines []ReorderLine `json:"lines"`
}

// ProductionSummaryResult is returned by ProductionSummary.
type ProductionSummaryResult struct {
	Days  int                          `json:"days"`
	Lines []core.ProductionSummaryLine `json:"lines"`
}

// MaterialUsageResult is returned by MaterialUsage.
type MaterialUsageResult struct {
	Days  int                      `json:"days"`
	Lines []core.MaterialUsageLine `json:"lines"`
}

// PurchaseOrderResult is returned by purchase order operations.
type PurchaseOrderResult struct {
	Order *core.PurchaseOrder `json:"order"`
}

// PurchaseOrderListResult is returned by ListPurchaseOrders.
type PurchaseOrderListResult struct {
	Orders []core.PurchaseOrder `json:"orders"`
}

// WorkbookResult is an encoded xlsx file ready to send.
type WorkbookResult struct {
	Filename string `json:"filename"`
	Data     []byte `json:"data"`
}

// AssistantResult is returned by InterpretCommand.
type AssistantResult struct {
	Command *core.StockCommand `json:"command"`
}

// CommandOutcome is returned by ExecuteCommand.
type CommandOutcome struct {
	Message    string                 `json:"message"`
	Material   *core.Material         `json:"material,omitempty"`   // set for restock / set_stock
	Production *core.ProductionResult `json:"production,omitempty"` // set for produce
}

// UserSession is returned by AuthenticateUser.
type UserSession struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// UserResult is returned by GetUser.
type UserResult struct {
	User *core.User `json:"user"`
}
