package core

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ReorderPolicy holds the replenishment heuristics. These are business
// policy, not mechanism: the workshop's numbers are 1.5x the reorder point
// for "needs attention" and a 2x target for suggested order quantities.
type ReorderPolicy struct {
	// AttentionFactor: materials with stock <= reorderPoint*AttentionFactor
	// appear in the needs-attention list.
	AttentionFactor float64
	// TargetFactor: suggested order quantity tops stock up to
	// reorderPoint*TargetFactor (minimum 1).
	TargetFactor float64
}

// DefaultReorderPolicy returns the workshop's stock heuristics.
func DefaultReorderPolicy() ReorderPolicy {
	return ReorderPolicy{AttentionFactor: 1.5, TargetFactor: 2}
}

// ReorderAdvisor derives replenishment signals from the material ledger.
// It is stateless and read-only: calling it twice with no intervening
// mutation returns identical results.
type ReorderAdvisor struct {
	pool   *pgxpool.Pool
	policy ReorderPolicy
}

// NewReorderAdvisor constructs a ReorderAdvisor with the given policy.
func NewReorderAdvisor(pool *pgxpool.Pool, policy ReorderPolicy) *ReorderAdvisor {
	return &ReorderAdvisor{pool: pool, policy: policy}
}

// MaterialsNeedingAttention returns every material at or below the attention
// threshold, ordered by name.
func (a *ReorderAdvisor) MaterialsNeedingAttention(ctx context.Context) ([]Material, error) {
	rows, err := a.pool.Query(ctx, `
		SELECT `+materialColumns+`
		FROM materials
		WHERE current_stock <= reorder_point * $1
		ORDER BY name`,
		a.policy.AttentionFactor)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []Material
	for rows.Next() {
		var m Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.CurrentStock, &m.ReorderPoint, &m.UnitCost, &m.UpdatedAt); err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

// SuggestedReorderQuantity tops the material up to TargetFactor times its
// reorder point, never suggesting less than one unit.
func (a *ReorderAdvisor) SuggestedReorderQuantity(m Material) int64 {
	suggested := int64(float64(m.ReorderPoint)*a.policy.TargetFactor) - m.CurrentStock
	if suggested < 1 {
		return 1
	}
	return suggested
}

// StatusOf classifies a material for display: critical at or below the
// reorder point, warning inside the attention band, ok above it.
func (a *ReorderAdvisor) StatusOf(m Material) StockStatus {
	switch {
	case m.CurrentStock <= m.ReorderPoint:
		return StockCritical
	case float64(m.CurrentStock) <= float64(m.ReorderPoint)*a.policy.AttentionFactor:
		return StockWarning
	default:
		return StockOK
	}
}
