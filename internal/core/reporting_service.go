package core

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ── Report types ──────────────────────────────────────────────────────────────

// ProductionSummaryLine is the total quantity of one product produced inside
// the report window.
type ProductionSummaryLine struct {
	ProductName string `json:"product_name"`
	TotalQty    int64  `json:"total_qty"`
}

// MaterialUsageLine is the total quantity of one material consumed by
// production inside the report window.
type MaterialUsageLine struct {
	MaterialName string `json:"material_name"`
	Unit         string `json:"unit"`
	TotalUsed    int64  `json:"total_used"`
}

// ── Interface ─────────────────────────────────────────────────────────────────

// ReportingService provides read-only reporting queries over the production
// log and the stock-movement audit trail.
type ReportingService interface {
	// ProductionSummary totals production per product since the given time,
	// ordered by product name.
	ProductionSummary(ctx context.Context, since time.Time) ([]ProductionSummaryLine, error)

	// MaterialUsage totals material consumption by production events since
	// the given time, ordered by material name. Usage is derived from
	// PRODUCTION movement rows, so it reflects what actually committed.
	MaterialUsage(ctx context.Context, since time.Time) ([]MaterialUsageLine, error)
}

type reportingService struct {
	pool *pgxpool.Pool
}

// NewReportingService constructs a ReportingService backed by PostgreSQL.
func NewReportingService(pool *pgxpool.Pool) ReportingService {
	return &reportingService{pool: pool}
}

func (s *reportingService) ProductionSummary(ctx context.Context, since time.Time) ([]ProductionSummaryLine, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT product_name, SUM(quantity)
		FROM production_log
		WHERE produced_at > $1
		GROUP BY product_name
		ORDER BY product_name`,
		since)
	if err != nil {
		return nil, fmt.Errorf("query production summary: %w", err)
	}
	defer rows.Close()

	var lines []ProductionSummaryLine
	for rows.Next() {
		var l ProductionSummaryLine
		if err := rows.Scan(&l.ProductName, &l.TotalQty); err != nil {
			return nil, fmt.Errorf("scan production summary line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (s *reportingService) MaterialUsage(ctx context.Context, since time.Time) ([]MaterialUsageLine, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT m.name, m.unit, SUM(-sm.delta)
		FROM stock_movements sm
		JOIN materials m ON m.id = sm.material_id
		WHERE sm.movement_type = $1 AND sm.moved_at > $2
		GROUP BY m.name, m.unit
		ORDER BY m.name`,
		MovementProduction, since)
	if err != nil {
		return nil, fmt.Errorf("query material usage: %w", err)
	}
	defer rows.Close()

	var lines []MaterialUsageLine
	for rows.Next() {
		var l MaterialUsageLine
		if err := rows.Scan(&l.MaterialName, &l.Unit, &l.TotalUsed); err != nil {
			return nil, fmt.Errorf("scan material usage line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
