package core_test

import (
	"reflect"
	"testing"

	"antenna-workshop/internal/core"
)

func TestAdvisor_MaterialsNeedingAttention(t *testing.T) {
	pool, ctx := setupTestDB(t)
	materials := core.NewMaterialService(pool)
	advisor := core.NewReorderAdvisor(pool, core.DefaultReorderPolicy())

	// Reorder points from the seed: Resistor 1k = 200, Coil = 50,
	// F-Connector = 100, Transformer = 50.
	stocks := map[string]int64{
		"Resistor 1k":              150, // critical (<= 200)
		"Coil 26gsm (16cm)":        60,  // warning (50 < 60 <= 75)
		"F-Connector Female (2002)": 151, // ok (> 150)
		"Transformer":              75,  // warning boundary (== 75)
	}
	for name, qty := range stocks {
		if _, err := materials.Restock(ctx, name, qty, nil); err != nil {
			t.Fatalf("Restock %q failed: %v", name, err)
		}
	}

	attention, err := advisor.MaterialsNeedingAttention(ctx)
	if err != nil {
		t.Fatalf("MaterialsNeedingAttention failed: %v", err)
	}

	var names []string
	for _, m := range attention {
		names = append(names, m.Name)
	}
	want := []string{"Coil 26gsm (16cm)", "Resistor 1k", "Transformer"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Needs-attention list = %v, want %v", names, want)
	}
}

func TestAdvisor_ReadSideIsIdempotent(t *testing.T) {
	pool, ctx := setupTestDB(t)
	advisor := core.NewReorderAdvisor(pool, core.DefaultReorderPolicy())

	first, err := advisor.MaterialsNeedingAttention(ctx)
	if err != nil {
		t.Fatalf("First call failed: %v", err)
	}
	second, err := advisor.MaterialsNeedingAttention(ctx)
	if err != nil {
		t.Fatalf("Second call failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Two advisor reads with no intervening mutation differ")
	}
}
