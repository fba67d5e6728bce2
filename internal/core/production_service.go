package core

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductionService validates and applies production events. A production
// event consumes every material in the product's recipe as one all-or-nothing
// operation: either all decrements and the production record commit together,
// or the ledger is left untouched.
type ProductionService interface {
	// Produce records the production of qty units of product on behalf of
	// userID. A qty of zero or less is a silent no-op (nil result, nil
	// error) to match the dashboard's empty-quantity affordance.
	//
	// Validation (ErrNoUser, ErrNoRecipe, InsufficientStockError) happens
	// strictly before any mutation. The commit itself runs in a single
	// transaction, so a mid-commit failure rolls every decrement back and
	// leaves no production record.
	Produce(ctx context.Context, product string, qty int64, userID int) (*ProductionResult, error)

	// Log returns the most recent production records for a user, newest
	// first. limit <= 0 defaults to 100.
	Log(ctx context.Context, userID int, limit int) ([]ProductionRecord, error)
}

type productionService struct {
	pool      *pgxpool.Pool
	catalog   *Catalog
	materials MaterialService
}

// NewProductionService constructs a ProductionService over the given catalog
// and material ledger.
func NewProductionService(pool *pgxpool.Pool, catalog *Catalog, materials MaterialService) ProductionService {
	return &productionService{pool: pool, catalog: catalog, materials: materials}
}

func (s *productionService) Produce(ctx context.Context, product string, qty int64, userID int) (*ProductionResult, error) {
	if qty <= 0 {
		return nil, nil
	}
	if userID <= 0 {
		return nil, ErrNoUser
	}

	recipe, err := s.catalog.GetRecipe(product)
	if err != nil {
		return nil, err
	}

	// Guard the per-material requirement against int64 wraparound. A wrapped
	// product would come out negative, sail through the sufficiency check,
	// and turn the decrement into an increment.
	for name, perUnit := range recipe {
		if qty > math.MaxInt64/perUnit {
			return nil, fmt.Errorf("%w: %d x %s overflows the requirement for %q",
				ErrInvalidQuantity, qty, product, name)
		}
	}

	// Materials are locked in name order so two concurrent production events
	// over overlapping recipes cannot deadlock.
	names := make([]string, 0, len(recipe))
	for name := range recipe {
		names = append(names, name)
	}
	sort.Strings(names)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin production transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Phase 1: lock and validate the entire set before any decrement.
	type lockedMaterial struct {
		material *Material
		required int64
	}
	locked := make([]lockedMaterial, 0, len(names))
	for _, name := range names {
		m, err := s.materials.LockForUpdateTx(ctx, tx, name)
		if err != nil {
			return nil, err
		}
		required := recipe[name] * qty
		if m.CurrentStock < required {
			return nil, &InsufficientStockError{Material: name, Required: required, Available: m.CurrentStock}
		}
		locked = append(locked, lockedMaterial{material: m, required: required})
	}

	// Phase 2: apply all decrements. The recipe check above guaranteed
	// sufficiency, so any failure here is a commit-phase error and aborts
	// the whole transaction.
	note := fmt.Sprintf("Produced %d x %s", qty, product)
	updated := make([]Material, 0, len(locked))
	for _, lm := range locked {
		m, err := s.materials.ApplyDeltaTx(ctx, tx, lm.material.ID, -lm.required, MovementProduction, &userID, note)
		if err != nil {
			return nil, err
		}
		updated = append(updated, *m)
	}

	var record ProductionRecord
	err = tx.QueryRow(ctx, `
		INSERT INTO production_log (product_name, quantity, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, product_name, quantity, user_id, produced_at`,
		product, qty, userID,
	).Scan(&record.ID, &record.ProductName, &record.Quantity, &record.UserID, &record.ProducedAt)
	if err != nil {
		return nil, fmt.Errorf("insert production record: %w", err)
	}

	// Single commit: all decrements and the record land together or not at all.
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit production of %d x %s: %w", qty, product, err)
	}

	return &ProductionResult{Record: record, Materials: updated}, nil
}

func (s *productionService) Log(ctx context.Context, userID int, limit int) ([]ProductionRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, product_name, quantity, user_id, produced_at
		FROM production_log
		WHERE user_id = $1
		ORDER BY produced_at DESC, id DESC
		LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query production log: %w", err)
	}
	defer rows.Close()

	var records []ProductionRecord
	for rows.Next() {
		var r ProductionRecord
		if err := rows.Scan(&r.ID, &r.ProductName, &r.Quantity, &r.UserID, &r.ProducedAt); err != nil {
			return nil, fmt.Errorf("scan production record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
