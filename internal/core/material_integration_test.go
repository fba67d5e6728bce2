package core_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"antenna-workshop/internal/core"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// setupTestDB connects to the dedicated test database, truncates all
// workshop tables, and seeds a small material set plus one active user.
// Skips the test when TEST_DATABASE_URL is not set so `go test ./...` stays
// safe against live databases.
func setupTestDB(t *testing.T) (*pgxpool.Pool, context.Context) {
	t.Helper()
	_ = godotenv.Load("../../.env")

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `
		TRUNCATE TABLE purchase_order_lines, purchase_orders, stock_movements, production_log, materials, users
		RESTART IDENTITY CASCADE;

		INSERT INTO materials (name, unit, current_stock, reorder_point, unit_cost) VALUES
		('Resistor 1k',               'pcs', 0, 200, 0.50),
		('Coil 26gsm (16cm)',         'pcs', 0, 50,  4.00),
		('F-Connector Female (2002)', 'pcs', 0, 100, 2.25),
		('Transformer',               'pcs', 0, 50,  35.00);

		-- password hash is irrelevant for core tests; auth is exercised at the app layer
		INSERT INTO users (username, email, password_hash, role, is_active)
		VALUES ('assembler', 'assembler@workshop.test', 'x', 'staff', true);
	`)
	if err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}

	return pool, ctx
}

// stockOf fetches the current stock of a material directly from the ledger.
func stockOf(t *testing.T, ctx context.Context, svc core.MaterialService, name string) int64 {
	t.Helper()
	m, err := svc.GetByName(ctx, name)
	if err != nil {
		t.Fatalf("GetByName(%q) failed: %v", name, err)
	}
	return m.CurrentStock
}

// movementCount counts audit rows of one movement type.
func movementCount(t *testing.T, ctx context.Context, pool *pgxpool.Pool, movement core.MovementType) int {
	t.Helper()
	var n int
	if err := pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM stock_movements WHERE movement_type = $1", movement,
	).Scan(&n); err != nil {
		t.Fatalf("count movements: %v", err)
	}
	return n
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestMaterials_ListOrderedByName(t *testing.T) {
	pool, ctx := setupTestDB(t)
	svc := core.NewMaterialService(pool)

	materials, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(materials) != 4 {
		t.Fatalf("Expected 4 materials, got %d", len(materials))
	}
	for i := 1; i < len(materials); i++ {
		if materials[i-1].Name >= materials[i].Name {
			t.Errorf("List not ordered by name: %q before %q", materials[i-1].Name, materials[i].Name)
		}
	}
}

func TestMaterials_GetByName_Unknown(t *testing.T) {
	pool, ctx := setupTestDB(t)
	svc := core.NewMaterialService(pool)

	_, err := svc.GetByName(ctx, "Unobtainium")
	if !errors.Is(err, core.ErrMaterialNotFound) {
		t.Errorf("Expected ErrMaterialNotFound, got %v", err)
	}
}

func TestMaterials_Restock(t *testing.T) {
	pool, ctx := setupTestDB(t)
	svc := core.NewMaterialService(pool)

	m, err := svc.Restock(ctx, "Resistor 1k", 290, nil)
	if err != nil {
		t.Fatalf("Restock failed: %v", err)
	}
	if m.CurrentStock != 290 {
		t.Errorf("Expected stock 290, got %d", m.CurrentStock)
	}

	// Restock on top of existing stock: 290 + 50 = 340.
	m, err = svc.Restock(ctx, "Resistor 1k", 50, nil)
	if err != nil {
		t.Fatalf("Second restock failed: %v", err)
	}
	if m.CurrentStock != 340 {
		t.Errorf("Expected stock 340, got %d", m.CurrentStock)
	}

	if n := movementCount(t, ctx, pool, core.MovementRestock); n != 2 {
		t.Errorf("Expected 2 RESTOCK movements, got %d", n)
	}
}

func TestMaterials_Restock_RejectsNonPositive(t *testing.T) {
	pool, ctx := setupTestDB(t)
	svc := core.NewMaterialService(pool)

	for _, qty := range []int64{0, -5} {
		_, err := svc.Restock(ctx, "Resistor 1k", qty, nil)
		if !errors.Is(err, core.ErrInvalidQuantity) {
			t.Errorf("Restock(%d): expected ErrInvalidQuantity, got %v", qty, err)
		}
	}
	if got := stockOf(t, ctx, svc, "Resistor 1k"); got != 0 {
		t.Errorf("Rejected restock mutated stock: got %d", got)
	}
}

func TestMaterials_SetStock(t *testing.T) {
	pool, ctx := setupTestDB(t)
	svc := core.NewMaterialService(pool)

	if _, err := svc.Restock(ctx, "Transformer", 80, nil); err != nil {
		t.Fatalf("Restock failed: %v", err)
	}

	// Absolute set to zero from any prior value.
	m, err := svc.SetStock(ctx, "Transformer", 0, nil)
	if err != nil {
		t.Fatalf("SetStock(0) failed: %v", err)
	}
	if m.CurrentStock != 0 {
		t.Errorf("Expected stock 0, got %d", m.CurrentStock)
	}

	// Negative values are rejected with no mutation.
	_, err = svc.SetStock(ctx, "Transformer", -5, nil)
	if !errors.Is(err, core.ErrInvalidValue) {
		t.Errorf("Expected ErrInvalidValue, got %v", err)
	}
	if got := stockOf(t, ctx, svc, "Transformer"); got != 0 {
		t.Errorf("Rejected SetStock mutated stock: got %d", got)
	}

	// The absolute set is audited as a signed adjustment delta.
	var delta int64
	err = pool.QueryRow(ctx, `
		SELECT delta FROM stock_movements
		WHERE movement_type = $1
		ORDER BY id DESC LIMIT 1`, core.MovementAdjustment,
	).Scan(&delta)
	if err != nil {
		t.Fatalf("fetch adjustment movement: %v", err)
	}
	if delta != -80 {
		t.Errorf("Expected adjustment delta -80, got %d", delta)
	}
}

func TestMaterials_ApplyDelta_InsufficientStock(t *testing.T) {
	pool, ctx := setupTestDB(t)
	svc := core.NewMaterialService(pool)

	if _, err := svc.Restock(ctx, "Resistor 1k", 5, nil); err != nil {
		t.Fatalf("Restock failed: %v", err)
	}

	_, err := svc.ApplyDelta(ctx, "Resistor 1k", -10, core.MovementAdjustment, nil, "test")
	ise, ok := core.AsInsufficientStock(err)
	if !ok {
		t.Fatalf("Expected InsufficientStockError, got %v", err)
	}
	if ise.Material != "Resistor 1k" || ise.Required != 10 || ise.Available != 5 {
		t.Errorf("Unexpected shortfall detail: %+v", ise)
	}
	if got := stockOf(t, ctx, svc, "Resistor 1k"); got != 5 {
		t.Errorf("Failed delta mutated stock: got %d", got)
	}
}

func TestMaterials_SeedIsIdempotent(t *testing.T) {
	pool, ctx := setupTestDB(t)

	seeds := []core.MaterialSeed{
		{Name: "Resistor 1k", Unit: "pcs", ReorderPoint: 200}, // exists already
		{Name: "LED 5mm", Unit: "pcs", ReorderPoint: 200},     // new
	}

	inserted, err := core.SeedMaterials(ctx, pool, seeds)
	if err != nil {
		t.Fatalf("SeedMaterials failed: %v", err)
	}
	if inserted != 1 {
		t.Errorf("Expected 1 inserted row, got %d", inserted)
	}

	// Running again inserts nothing and keeps existing stock intact.
	svc := core.NewMaterialService(pool)
	if _, err := svc.Restock(ctx, "LED 5mm", 10, nil); err != nil {
		t.Fatalf("Restock failed: %v", err)
	}

	inserted, err = core.SeedMaterials(ctx, pool, seeds)
	if err != nil {
		t.Fatalf("Second SeedMaterials failed: %v", err)
	}
	if inserted != 0 {
		t.Errorf("Expected 0 inserted rows on re-run, got %d", inserted)
	}
	if got := stockOf(t, ctx, svc, "LED 5mm"); got != 10 {
		t.Errorf("Re-seeding clobbered stock: got %d", got)
	}
}
