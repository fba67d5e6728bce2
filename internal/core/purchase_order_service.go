package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type purchaseOrderService struct {
	pool *pgxpool.Pool
}

// NewPurchaseOrderService constructs a PurchaseOrderService backed by PostgreSQL.
func NewPurchaseOrderService(pool *pgxpool.Pool) PurchaseOrderService {
	return &purchaseOrderService{pool: pool}
}

// newPONumber builds a human-readable order reference. The uuid suffix keeps
// numbers unique without a sequence table.
func newPONumber(now time.Time) string {
	return fmt.Sprintf("PO-%s-%s", now.Format("20060102"), uuid.NewString()[:8])
}

func (s *purchaseOrderService) CreatePO(ctx context.Context, supplierName string, lines []PurchaseOrderLineInput, notes string, userID int) (*PurchaseOrder, error) {
	if supplierName == "" {
		return nil, fmt.Errorf("%w: purchase order requires a supplier name", ErrInvalidValue)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: purchase order must have at least one line", ErrInvalidValue)
	}
	if userID <= 0 {
		return nil, ErrNoUser
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Resolve lines against the ledger and compute totals.
	type resolvedLine struct {
		materialID   int
		materialName string
		unit         string
		quantity     int64
		unitCost     decimal.Decimal
		lineTotal    decimal.Decimal
	}
	var resolved []resolvedLine
	var total decimal.Decimal

	for i, input := range lines {
		if input.Quantity <= 0 {
			return nil, fmt.Errorf("line %d: %w: got %d", i+1, ErrInvalidQuantity, input.Quantity)
		}
		var rl resolvedLine
		err := tx.QueryRow(ctx,
			"SELECT id, name, unit, unit_cost FROM materials WHERE name = $1",
			input.MaterialName,
		).Scan(&rl.materialID, &rl.materialName, &rl.unit, &rl.unitCost)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("line %d: %w: %q", i+1, ErrMaterialNotFound, input.MaterialName)
			}
			return nil, fmt.Errorf("line %d: resolve material: %w", i+1, err)
		}
		rl.quantity = input.Quantity
		rl.lineTotal = rl.unitCost.Mul(decimal.NewFromInt(input.Quantity))
		total = total.Add(rl.lineTotal)
		resolved = append(resolved, rl)
	}

	var toNotes *string
	if notes != "" {
		toNotes = &notes
	}

	var poID int
	if err := tx.QueryRow(ctx, `
		INSERT INTO purchase_orders (po_number, supplier_name, total, notes, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		newPONumber(time.Now()), supplierName, total, toNotes, userID,
	).Scan(&poID); err != nil {
		return nil, fmt.Errorf("insert purchase order: %w", err)
	}

	for i, rl := range resolved {
		if _, err := tx.Exec(ctx, `
			INSERT INTO purchase_order_lines
			            (order_id, line_number, material_id, material_name, unit, quantity, unit_cost, line_total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			poID, i+1, rl.materialID, rl.materialName, rl.unit, rl.quantity, rl.unitCost, rl.lineTotal,
		); err != nil {
			return nil, fmt.Errorf("insert PO line %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit purchase order: %w", err)
	}

	return s.GetPO(ctx, poID)
}

func (s *purchaseOrderService) GetPO(ctx context.Context, poID int) (*PurchaseOrder, error) {
	po := &PurchaseOrder{}
	err := s.pool.QueryRow(ctx, `
		SELECT id, po_number, supplier_name, total, notes, created_by, created_at
		FROM purchase_orders
		WHERE id = $1`,
		poID,
	).Scan(&po.ID, &po.PONumber, &po.SupplierName, &po.Total, &po.Notes, &po.CreatedBy, &po.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id=%d", ErrPONotFound, poID)
		}
		return nil, fmt.Errorf("fetch purchase order %d: %w", poID, err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, order_id, line_number, material_id, material_name, unit, quantity, unit_cost, line_total
		FROM purchase_order_lines
		WHERE order_id = $1
		ORDER BY line_number`,
		poID)
	if err != nil {
		return nil, fmt.Errorf("query PO lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l PurchaseOrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.LineNumber, &l.MaterialID, &l.MaterialName,
			&l.Unit, &l.Quantity, &l.UnitCost, &l.LineTotal); err != nil {
			return nil, fmt.Errorf("scan PO line: %w", err)
		}
		po.Lines = append(po.Lines, l)
	}
	return po, rows.Err()
}

func (s *purchaseOrderService) ListPOs(ctx context.Context, limit int) ([]PurchaseOrder, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, po_number, supplier_name, total, notes, created_by, created_at
		FROM purchase_orders
		ORDER BY created_at DESC, id DESC
		LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("query purchase orders: %w", err)
	}
	defer rows.Close()

	var orders []PurchaseOrder
	for rows.Next() {
		var po PurchaseOrder
		if err := rows.Scan(&po.ID, &po.PONumber, &po.SupplierName, &po.Total, &po.Notes, &po.CreatedBy, &po.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		orders = append(orders, po)
	}
	return orders, rows.Err()
}
