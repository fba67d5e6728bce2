package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// MaterialSeed is one configured material used for catalog seeding.
type MaterialSeed struct {
	Name         string
	Unit         string
	ReorderPoint int64
	UnitCost     decimal.Decimal
}

// SeedMaterials inserts any configured material that is missing from the
// ledger, with an initial stock of zero. Existing rows are left untouched, so
// seeding is safe to run on every startup. Returns the number of rows
// inserted.
func SeedMaterials(ctx context.Context, pool *pgxpool.Pool, seeds []MaterialSeed) (int, error) {
	inserted := 0
	for _, seed := range seeds {
		if seed.Name == "" {
			return inserted, fmt.Errorf("material seed with empty name")
		}
		tag, err := pool.Exec(ctx, `
			INSERT INTO materials (name, unit, current_stock, reorder_point, unit_cost)
			VALUES ($1, $2, 0, $3, $4)
			ON CONFLICT (name) DO NOTHING`,
			seed.Name, seed.Unit, seed.ReorderPoint, seed.UnitCost)
		if err != nil {
			return inserted, fmt.Errorf("seed material %q: %w", seed.Name, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
