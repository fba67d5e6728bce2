package core_test

import (
	"reflect"
	"testing"
	"time"

	"antenna-workshop/internal/core"
)

func TestReporting_SummaryAndUsage(t *testing.T) {
	pool, ctx := setupTestDB(t)
	materials := core.NewMaterialService(pool)
	production := core.NewProductionService(pool, testCatalog(t), materials)
	reports := core.NewReportingService(pool)

	for name, qty := range map[string]int64{
		"Resistor 1k":               100,
		"Coil 26gsm (16cm)":         100,
		"F-Connector Female (2002)": 100,
		"Transformer":               100,
	} {
		if _, err := materials.Restock(ctx, name, qty, nil); err != nil {
			t.Fatalf("Restock %q failed: %v", name, err)
		}
	}

	since := time.Now().Add(-time.Minute)

	if _, err := production.Produce(ctx, "Booster Assembly", 5, testUserID); err != nil {
		t.Fatalf("Produce Booster failed: %v", err)
	}
	if _, err := production.Produce(ctx, "Booster Assembly", 3, testUserID); err != nil {
		t.Fatalf("Produce Booster failed: %v", err)
	}
	if _, err := production.Produce(ctx, "Power Supply Assembly", 2, testUserID); err != nil {
		t.Fatalf("Produce Power Supply failed: %v", err)
	}

	summary, err := reports.ProductionSummary(ctx, since)
	if err != nil {
		t.Fatalf("ProductionSummary failed: %v", err)
	}
	wantSummary := []core.ProductionSummaryLine{
		{ProductName: "Booster Assembly", TotalQty: 8},
		{ProductName: "Power Supply Assembly", TotalQty: 2},
	}
	if !reflect.DeepEqual(summary, wantSummary) {
		t.Errorf("ProductionSummary = %+v, want %+v", summary, wantSummary)
	}

	// Booster consumes Resistor x1, Coil x2, F-Connector x1 per unit; Power
	// Supply consumes Transformer x1, F-Connector x1 per unit.
	usage, err := reports.MaterialUsage(ctx, since)
	if err != nil {
		t.Fatalf("MaterialUsage failed: %v", err)
	}
	wantUsage := []core.MaterialUsageLine{
		{MaterialName: "Coil 26gsm (16cm)", Unit: "pcs", TotalUsed: 16},
		{MaterialName: "F-Connector Female (2002)", Unit: "pcs", TotalUsed: 10},
		{MaterialName: "Resistor 1k", Unit: "pcs", TotalUsed: 8},
		{MaterialName: "Transformer", Unit: "pcs", TotalUsed: 2},
	}
	if !reflect.DeepEqual(usage, wantUsage) {
		t.Errorf("MaterialUsage = %+v, want %+v", usage, wantUsage)
	}
}

func TestReporting_ExcludesRestocksAndOlderEvents(t *testing.T) {
	pool, ctx := setupTestDB(t)
	materials := core.NewMaterialService(pool)
	reports := core.NewReportingService(pool)

	if _, err := materials.Restock(ctx, "Resistor 1k", 500, nil); err != nil {
		t.Fatalf("Restock failed: %v", err)
	}

	since := time.Now().Add(-time.Minute)

	summary, err := reports.ProductionSummary(ctx, since)
	if err != nil {
		t.Fatalf("ProductionSummary failed: %v", err)
	}
	if len(summary) != 0 {
		t.Errorf("Summary with no production = %+v, want empty", summary)
	}

	// Restock movements are positive deltas and must not count as usage.
	usage, err := reports.MaterialUsage(ctx, since)
	if err != nil {
		t.Fatalf("MaterialUsage failed: %v", err)
	}
	if len(usage) != 0 {
		t.Errorf("Usage with no production = %+v, want empty", usage)
	}

	// Events before the window are invisible.
	future := time.Now().Add(time.Hour)
	if s, err := reports.ProductionSummary(ctx, future); err != nil || len(s) != 0 {
		t.Errorf("Summary past the window = %+v (err %v), want empty", s, err)
	}
}
