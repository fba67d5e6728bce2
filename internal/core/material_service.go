package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MaterialService is the Material Ledger: the single owner of stock values.
// All writers go through ApplyDelta or SetStock; nothing else updates
// current_stock. Every committed mutation leaves a stock_movements audit row.
type MaterialService interface {
	// GetByName returns a material by its unique name.
	GetByName(ctx context.Context, name string) (*Material, error)
	// List returns all materials ordered by name, ascending.
	List(ctx context.Context) ([]Material, error)

	// ApplyDelta adds delta (possibly negative) to a material's stock.
	// The non-negativity check and the mutation are one atomic step: the row
	// is locked, checked, and updated inside a single transaction. Returns
	// InsufficientStockError if the result would be negative.
	ApplyDelta(ctx context.Context, name string, delta int64, movement MovementType, userID *int, note string) (*Material, error)

	// Restock adds a positive quantity. Returns ErrInvalidQuantity for
	// qty <= 0 without touching the ledger.
	Restock(ctx context.Context, name string, qty int64, userID *int) (*Material, error)

	// SetStock overwrites a material's stock with an absolute value.
	// Returns ErrInvalidValue for negative values without touching the ledger.
	SetStock(ctx context.Context, name string, value int64, userID *int) (*Material, error)

	// TX-scoped operations: work within a caller-provided transaction.
	// Used by ProductionService to keep multi-material decrements atomic.

	// LockForUpdateTx loads and row-locks a material by name within tx.
	LockForUpdateTx(ctx context.Context, tx pgx.Tx, name string) (*Material, error)
	// ApplyDeltaTx mutates an already-locked material's stock within tx and
	// records the movement row. The caller is responsible for having
	// validated sufficiency beforehand.
	ApplyDeltaTx(ctx context.Context, tx pgx.Tx, materialID int, delta int64, movement MovementType, userID *int, note string) (*Material, error)
}

type materialService struct {
	pool *pgxpool.Pool
}

// NewMaterialService constructs a MaterialService backed by PostgreSQL.
func NewMaterialService(pool *pgxpool.Pool) MaterialService {
	return &materialService{pool: pool}
}

const materialColumns = "id, name, unit, current_stock, reorder_point, unit_cost, updated_at"

func scanMaterial(row pgx.Row) (*Material, error) {
	m := &Material{}
	err := row.Scan(&m.ID, &m.Name, &m.Unit, &m.CurrentStock, &m.ReorderPoint, &m.UnitCost, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *materialService) GetByName(ctx context.Context, name string) (*Material, error) {
	m, err := scanMaterial(s.pool.QueryRow(ctx,
		"SELECT "+materialColumns+" FROM materials WHERE name = $1", name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", ErrMaterialNotFound, name)
		}
		return nil, fmt.Errorf("fetch material %q: %w", name, err)
	}
	return m, nil
}

func (s *materialService) List(ctx context.Context) ([]Material, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT "+materialColumns+" FROM materials ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query materials: %w", err)
	}
	defer rows.Close()

	var materials []Material
	for rows.Next() {
		var m Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.CurrentStock, &m.ReorderPoint, &m.UnitCost, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

func (s *materialService) ApplyDelta(ctx context.Context, name string, delta int64, movement MovementType, userID *int, note string) (*Material, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	m, err := s.LockForUpdateTx(ctx, tx, name)
	if err != nil {
		return nil, err
	}
	if m.CurrentStock+delta < 0 {
		return nil, &InsufficientStockError{Material: name, Required: -delta, Available: m.CurrentStock}
	}

	updated, err := s.ApplyDeltaTx(ctx, tx, m.ID, delta, movement, userID, note)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit stock change for %q: %w", name, err)
	}
	return updated, nil
}

func (s *materialService) Restock(ctx context.Context, name string, qty int64, userID *int) (*Material, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, qty)
	}
	return s.ApplyDelta(ctx, name, qty, MovementRestock, userID,
		fmt.Sprintf("Restocked %d", qty))
}

func (s *materialService) SetStock(ctx context.Context, name string, value int64, userID *int) (*Material, error) {
	if value < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidValue, value)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	m, err := s.LockForUpdateTx(ctx, tx, name)
	if err != nil {
		return nil, err
	}

	// An absolute set is audited as the signed difference from the old value.
	updated, err := s.ApplyDeltaTx(ctx, tx, m.ID, value-m.CurrentStock, MovementAdjustment, userID,
		fmt.Sprintf("Stock set to %d (was %d)", value, m.CurrentStock))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit stock set for %q: %w", name, err)
	}
	return updated, nil
}

// ── TX-scoped operations ──────────────────────────────────────────────────────

func (s *materialService) LockForUpdateTx(ctx context.Context, tx pgx.Tx, name string) (*Material, error) {
	m, err := scanMaterial(tx.QueryRow(ctx,
		"SELECT "+materialColumns+" FROM materials WHERE name = $1 FOR UPDATE", name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", ErrMaterialNotFound, name)
		}
		return nil, fmt.Errorf("lock material %q: %w", name, err)
	}
	return m, nil
}

func (s *materialService) ApplyDeltaTx(ctx context.Context, tx pgx.Tx, materialID int, delta int64, movement MovementType, userID *int, note string) (*Material, error) {
	m, err := scanMaterial(tx.QueryRow(ctx, `
		UPDATE materials
		SET current_stock = current_stock + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+materialColumns,
		delta, materialID))
	if err != nil {
		return nil, fmt.Errorf("update stock for material id=%d: %w", materialID, err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO stock_movements (material_id, movement_type, delta, user_id, note)
		VALUES ($1, $2, $3, $4, $5)`,
		materialID, movement, delta, userID, note,
	); err != nil {
		return nil, fmt.Errorf("insert stock movement for material id=%d: %w", materialID, err)
	}
	return m, nil
}
