package core_test

import (
	"testing"

	"antenna-workshop/internal/core"
)

func advisor() *core.ReorderAdvisor {
	return core.NewReorderAdvisor(nil, core.DefaultReorderPolicy())
}

func TestStatusOf_Classification(t *testing.T) {
	a := advisor()

	tests := []struct {
		name    string
		stock   int64
		reorder int64
		want    core.StockStatus
	}{
		{"at zero with zero reorder point", 0, 0, core.StockCritical},
		{"exactly at reorder point", 200, 200, core.StockCritical},
		{"below reorder point", 5, 200, core.StockCritical},
		{"inside attention band", 250, 200, core.StockWarning},
		{"at attention boundary", 300, 200, core.StockWarning},
		{"just above attention boundary", 301, 200, core.StockOK},
		{"healthy", 1000, 200, core.StockOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := core.Material{CurrentStock: tt.stock, ReorderPoint: tt.reorder}
			if got := a.StatusOf(m); got != tt.want {
				t.Errorf("StatusOf(stock=%d, reorder=%d) = %s, want %s", tt.stock, tt.reorder, got, tt.want)
			}
		})
	}
}

func TestSuggestedReorderQuantity(t *testing.T) {
	a := advisor()

	tests := []struct {
		name    string
		stock   int64
		reorder int64
		want    int64
	}{
		{"empty stock", 0, 200, 400},
		{"partial stock", 150, 200, 250},
		{"stock above target still suggests one", 500, 200, 1},
		{"exactly at target", 400, 200, 1},
		{"zero reorder point", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := core.Material{CurrentStock: tt.stock, ReorderPoint: tt.reorder}
			if got := a.SuggestedReorderQuantity(m); got != tt.want {
				t.Errorf("SuggestedReorderQuantity(stock=%d, reorder=%d) = %d, want %d", tt.stock, tt.reorder, got, tt.want)
			}
		})
	}
}

func TestCustomPolicy(t *testing.T) {
	a := core.NewReorderAdvisor(nil, core.ReorderPolicy{AttentionFactor: 2, TargetFactor: 3})

	m := core.Material{CurrentStock: 350, ReorderPoint: 200}
	if got := a.StatusOf(m); got != core.StockWarning {
		t.Errorf("Expected warning at stock 350 with attention factor 2, got %s", got)
	}
	if got := a.SuggestedReorderQuantity(m); got != 250 {
		t.Errorf("Expected suggestion 250 (3*200-350), got %d", got)
	}
}
