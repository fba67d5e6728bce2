package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"antenna-workshop/internal/ai"
	"antenna-workshop/internal/core"
	"antenna-workshop/internal/export"
	"antenna-workshop/internal/metrics"
)

type appService struct {
	pool       *pgxpool.Pool
	catalog    *core.Catalog
	materials  core.MaterialService
	production core.ProductionService
	orders     core.PurchaseOrderService
	reports    core.ReportingService
	users      core.UserService
	advisor    *core.ReorderAdvisor
	agent      *ai.Agent
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(
	pool *pgxpool.Pool,
	catalog *core.Catalog,
	materials core.MaterialService,
	production core.ProductionService,
	orders core.PurchaseOrderService,
	reports core.ReportingService,
	users core.UserService,
	advisor *core.ReorderAdvisor,
	agent *ai.Agent,
) ApplicationService {
	return &appService{
		pool:       pool,
		catalog:    catalog,
		materials:  materials,
		production: production,
		orders:     orders,
		reports:    reports,
		users:      users,
		advisor:    advisor,
		agent:      agent,
	}
}

// ListMaterials returns all materials with their stock status.
func (s *appService) ListMaterials(ctx context.Context) (*MaterialListResult, error) {
	materials, err := s.materials.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]MaterialView, len(materials))
	for i, m := range materials {
		views[i] = MaterialView{Material: m, Status: s.advisor.StatusOf(m)}
	}
	return &MaterialListResult{Materials: views}, nil
}

// GetMaterial returns a single material by name.
func (s *appService) GetMaterial(ctx context.Context, name string) (*MaterialResult, error) {
	m, err := s.materials.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return &MaterialResult{Material: MaterialView{Material: *m, Status: s.advisor.StatusOf(*m)}}, nil
}

// Produce builds quantity units of the named product.
func (s *appService) Produce(ctx context.Context, req ProduceRequest) (*ProduceResult, error) {
	result, err := s.production.Produce(ctx, req.ProductName, req.Quantity, req.UserID)
	if err != nil {
		if _, ok := core.AsInsufficientStock(err); ok {
			metrics.InsufficientStockTotal.Inc()
		}
		return nil, err
	}
	if result == nil {
		return &ProduceResult{}, nil
	}

	metrics.ProductionsTotal.WithLabelValues(req.ProductName).Inc()
	metrics.UnitsProducedTotal.WithLabelValues(req.ProductName).Add(float64(req.Quantity))
	metrics.StockMovementsTotal.WithLabelValues(string(core.MovementProduction)).Add(float64(len(result.Materials)))

	return &ProduceResult{Record: &result.Record, Materials: result.Materials}, nil
}

// ProductionLog returns a user's production history, newest first.
func (s *appService) ProductionLog(ctx context.Context, userID, limit int) (*ProductionLogResult, error) {
	records, err := s.production.Log(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	return &ProductionLogResult{Records: records}, nil
}

// Restock adds a positive quantity to a material's stock.
func (s *appService) Restock(ctx context.Context, req StockChangeRequest) (*MaterialResult, error) {
	m, err := s.materials.Restock(ctx, req.MaterialName, req.Quantity, optionalUser(req.UserID))
	if err != nil {
		return nil, err
	}
	metrics.StockMovementsTotal.WithLabelValues(string(core.MovementRestock)).Inc()
	return &MaterialResult{Material: MaterialView{Material: *m, Status: s.advisor.StatusOf(*m)}}, nil
}

// SetStock overwrites a material's stock with an absolute value.
func (s *appService) SetStock(ctx context.Context, req StockChangeRequest) (*MaterialResult, error) {
	m, err := s.materials.SetStock(ctx, req.MaterialName, req.Quantity, optionalUser(req.UserID))
	if err != nil {
		return nil, err
	}
	metrics.StockMovementsTotal.WithLabelValues(string(core.MovementAdjustment)).Inc()
	return &MaterialResult{Material: MaterialView{Material: *m, Status: s.advisor.StatusOf(*m)}}, nil
}

// ListProducts returns the producible product names, sorted.
func (s *appService) ListProducts(ctx context.Context) (*ProductListResult, error) {
	return &ProductListResult{Products: s.catalog.Products()}, nil
}

// GetRecipe returns a product's per-unit material requirements.
func (s *appService) GetRecipe(ctx context.Context, productName string) (*RecipeResult, error) {
	recipe, err := s.catalog.GetRecipe(productName)
	if err != nil {
		return nil, err
	}
	return &RecipeResult{ProductName: productName, Recipe: recipe}, nil
}

// ReorderReport returns materials at or below the attention threshold.
func (s *appService) ReorderReport(ctx context.Context) (*ReorderResult, error) {
	materials, err := s.advisor.MaterialsNeedingAttention(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]ReorderLine, len(materials))
	for i, m := range materials {
		lines[i] = ReorderLine{
			Material:     m,
			Status:       s.advisor.StatusOf(m),
			SuggestedQty: s.advisor.SuggestedReorderQuantity(m),
		}
	}
	return &ReorderResult{Lines: lines}, nil
}

// ProductionSummary totals production per product over the last `days`.
func (s *appService) ProductionSummary(ctx context.Context, days int) (*ProductionSummaryResult, error) {
	if days <= 0 {
		days = 30
	}
	lines, err := s.reports.ProductionSummary(ctx, time.Now().AddDate(0, 0, -days))
	if err != nil {
		return nil, err
	}
	return &ProductionSummaryResult{Days: days, Lines: lines}, nil
}

// MaterialUsage totals material consumption over the last `days`.
func (s *appService) MaterialUsage(ctx context.Context, days int) (*MaterialUsageResult, error) {
	if days <= 0 {
		days = 30
	}
	lines, err := s.reports.MaterialUsage(ctx, time.Now().AddDate(0, 0, -days))
	if err != nil {
		return nil, err
	}
	return &MaterialUsageResult{Days: days, Lines: lines}, nil
}

// CreatePurchaseOrder creates a purchase order from material lines.
func (s *appService) CreatePurchaseOrder(ctx context.Context, req CreatePORequest) (*PurchaseOrderResult, error) {
	lines := make([]core.PurchaseOrderLineInput, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = core.PurchaseOrderLineInput{MaterialName: l.MaterialName, Quantity: l.Quantity}
	}
	po, err := s.orders.CreatePO(ctx, req.SupplierName, lines, req.Notes, req.UserID)
	if err != nil {
		return nil, err
	}
	return &PurchaseOrderResult{Order: po}, nil
}

// GetPurchaseOrder returns a purchase order by ID, with lines.
func (s *appService) GetPurchaseOrder(ctx context.Context, poID int) (*PurchaseOrderResult, error) {
	po, err := s.orders.GetPO(ctx, poID)
	if err != nil {
		return nil, err
	}
	return &PurchaseOrderResult{Order: po}, nil
}

// ListPurchaseOrders returns recent purchase orders, newest first.
func (s *appService) ListPurchaseOrders(ctx context.Context, limit int) (*PurchaseOrderListResult, error) {
	orders, err := s.orders.ListPOs(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &PurchaseOrderListResult{Orders: orders}, nil
}

// PurchaseOrderWorkbook renders a purchase order as an xlsx download.
func (s *appService) PurchaseOrderWorkbook(ctx context.Context, poID int) (*WorkbookResult, error) {
	po, err := s.orders.GetPO(ctx, poID)
	if err != nil {
		return nil, err
	}
	data, filename, err := export.PurchaseOrderWorkbook(po)
	if err != nil {
		return nil, err
	}
	return &WorkbookResult{Filename: filename, Data: data}, nil
}

// InterpretCommand proposes a stock command from a natural-language
// instruction. The proposal is returned for confirmation, never executed.
func (s *appService) InterpretCommand(ctx context.Context, text string) (*AssistantResult, error) {
	if s.agent == nil {
		return nil, fmt.Errorf("assistant is not configured")
	}

	materials, err := s.materials.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load material names: %w", err)
	}
	names := make([]string, len(materials))
	for i, m := range materials {
		names[i] = m.Name
	}

	cmd, err := s.agent.InterpretCommand(ctx, text, s.catalog.Products(), names)
	if err != nil {
		return nil, err
	}
	return &AssistantResult{Command: cmd}, nil
}

// ExecuteCommand applies a confirmed stock command.
func (s *appService) ExecuteCommand(ctx context.Context, cmd core.StockCommand, userID int) (*CommandOutcome, error) {
	cmd.Normalize()
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	switch cmd.Action {
	case core.ActionProduce:
		result, err := s.Produce(ctx, ProduceRequest{ProductName: cmd.Target, Quantity: cmd.Quantity, UserID: userID})
		if err != nil {
			return nil, err
		}
		return &CommandOutcome{
			Message:    fmt.Sprintf("Produced %d x %s", cmd.Quantity, cmd.Target),
			Production: &core.ProductionResult{Record: *result.Record, Materials: result.Materials},
		}, nil

	case core.ActionRestock:
		result, err := s.Restock(ctx, StockChangeRequest{MaterialName: cmd.Target, Quantity: cmd.Quantity, UserID: userID})
		if err != nil {
			return nil, err
		}
		m := result.Material.Material
		return &CommandOutcome{
			Message:  fmt.Sprintf("Restocked %s by %d (now %d)", cmd.Target, cmd.Quantity, m.CurrentStock),
			Material: &m,
		}, nil

	case core.ActionSetStock:
		result, err := s.SetStock(ctx, StockChangeRequest{MaterialName: cmd.Target, Quantity: cmd.Quantity, UserID: userID})
		if err != nil {
			return nil, err
		}
		m := result.Material.Material
		return &CommandOutcome{
			Message:  fmt.Sprintf("Set %s stock to %d", cmd.Target, m.CurrentStock),
			Material: &m,
		}, nil
	}

	return nil, fmt.Errorf("unknown action %q", cmd.Action)
}

// AuthenticateUser verifies credentials and returns a session on success.
func (s *appService) AuthenticateUser(ctx context.Context, username, password string) (*UserSession, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	return &UserSession{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// GetUser returns user profile by ID.
func (s *appService) GetUser(ctx context.Context, userID int) (*UserResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserResult{User: user}, nil
}

// optionalUser turns a session user id into the nullable audit reference.
func optionalUser(userID int) *int {
	if userID <= 0 {
		return nil
	}
	return &userID
}
