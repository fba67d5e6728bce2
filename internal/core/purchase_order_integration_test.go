package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"antenna-workshop/internal/core"
)

func TestCreatePO_ComputesTotalsFromMaterialCosts(t *testing.T) {
	pool, ctx := setupTestDB(t)
	pos := core.NewPurchaseOrderService(pool)

	po, err := pos.CreatePO(ctx, "Antenna Parts Co", []core.PurchaseOrderLineInput{
		{MaterialName: "Transformer", Quantity: 10},
		{MaterialName: "Resistor 1k", Quantity: 500},
	}, "", testUserID)
	if err != nil {
		t.Fatalf("CreatePO failed: %v", err)
	}

	if !strings.HasPrefix(po.PONumber, "PO-") {
		t.Errorf("PO number %q missing PO- prefix", po.PONumber)
	}
	if len(po.Lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(po.Lines))
	}

	// Unit costs are snapshotted from the catalog: 35.00 and 0.50.
	wantTransformer := decimal.RequireFromString("350.00")
	wantResistor := decimal.RequireFromString("250.00")
	if !po.Lines[0].LineTotal.Equal(wantTransformer) {
		t.Errorf("Transformer line total = %s, want %s", po.Lines[0].LineTotal, wantTransformer)
	}
	if !po.Lines[1].LineTotal.Equal(wantResistor) {
		t.Errorf("Resistor line total = %s, want %s", po.Lines[1].LineTotal, wantResistor)
	}
	if want := decimal.RequireFromString("600.00"); !po.Total.Equal(want) {
		t.Errorf("PO total = %s, want %s", po.Total, want)
	}
}

func TestCreatePO_UnknownMaterialAbortsWholeOrder(t *testing.T) {
	pool, ctx := setupTestDB(t)
	pos := core.NewPurchaseOrderService(pool)

	_, err := pos.CreatePO(ctx, "Antenna Parts Co", []core.PurchaseOrderLineInput{
		{MaterialName: "Transformer", Quantity: 10},
		{MaterialName: "Unobtainium Coil", Quantity: 5},
	}, "", testUserID)
	if !errors.Is(err, core.ErrMaterialNotFound) {
		t.Fatalf("Expected ErrMaterialNotFound, got %v", err)
	}

	orders, err := pos.ListPOs(ctx, 10)
	if err != nil {
		t.Fatalf("ListPOs failed: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("Failed order left %d rows behind", len(orders))
	}
}

func TestCreatePO_RejectsBadInput(t *testing.T) {
	pool, ctx := setupTestDB(t)
	pos := core.NewPurchaseOrderService(pool)

	line := []core.PurchaseOrderLineInput{{MaterialName: "Transformer", Quantity: 1}}

	if _, err := pos.CreatePO(ctx, "", line, "", testUserID); !errors.Is(err, core.ErrInvalidValue) {
		t.Errorf("Empty supplier: got %v, want ErrInvalidValue", err)
	}
	if _, err := pos.CreatePO(ctx, "Antenna Parts Co", nil, "", testUserID); !errors.Is(err, core.ErrInvalidValue) {
		t.Errorf("No lines: got %v, want ErrInvalidValue", err)
	}
	zeroQty := []core.PurchaseOrderLineInput{{MaterialName: "Transformer", Quantity: 0}}
	if _, err := pos.CreatePO(ctx, "Antenna Parts Co", zeroQty, "", testUserID); !errors.Is(err, core.ErrInvalidQuantity) {
		t.Errorf("Zero quantity: got %v, want ErrInvalidQuantity", err)
	}
	if _, err := pos.CreatePO(ctx, "Antenna Parts Co", line, "", 0); !errors.Is(err, core.ErrNoUser) {
		t.Errorf("Missing user: got %v, want ErrNoUser", err)
	}
}

func TestListPOs_NewestFirst(t *testing.T) {
	pool, ctx := setupTestDB(t)
	pos := core.NewPurchaseOrderService(pool)

	suppliers := []string{"First Supplier", "Second Supplier", "Third Supplier"}
	for _, s := range suppliers {
		_, err := pos.CreatePO(ctx, s, []core.PurchaseOrderLineInput{
			{MaterialName: "Coil 26gsm (16cm)", Quantity: 2},
		}, "", testUserID)
		if err != nil {
			t.Fatalf("CreatePO for %q failed: %v", s, err)
		}
	}

	orders, err := pos.ListPOs(ctx, 2)
	if err != nil {
		t.Fatalf("ListPOs failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("Expected 2 orders with limit 2, got %d", len(orders))
	}
	if orders[0].SupplierName != "Third Supplier" || orders[1].SupplierName != "Second Supplier" {
		t.Errorf("Orders not newest-first: %s, %s", orders[0].SupplierName, orders[1].SupplierName)
	}

	fetched, err := pos.GetPO(ctx, orders[0].ID)
	if err != nil {
		t.Fatalf("GetPO failed: %v", err)
	}
	if len(fetched.Lines) != 1 || fetched.Lines[0].MaterialName != "Coil 26gsm (16cm)" {
		t.Errorf("GetPO lines = %+v", fetched.Lines)
	}
}

func TestGetPO_Unknown(t *testing.T) {
	pool, ctx := setupTestDB(t)
	pos := core.NewPurchaseOrderService(pool)

	// The missing case carries a sentinel so the web layer can answer 404
	// without also swallowing genuine query failures as not-found.
	_, err := pos.GetPO(ctx, 424242)
	if !errors.Is(err, core.ErrPONotFound) {
		t.Errorf("Expected ErrPONotFound, got %v", err)
	}
}
