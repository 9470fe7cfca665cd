package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rkeng/billing-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo read-only aggregation queries over committed bill state.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository builds the reporting adapter.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// MonthlyTotal sums item totals over bills of the factory created within the
// given calendar month. COALESCE returns zero for months with no bills.
func (r *ReportRepo) MonthlyTotal(ctx context.Context, factoryID string, year, month int) (int64, error) {
	const query = `
	SELECT COALESCE(SUM(bi.total), 0)
	FROM bills b
	JOIN bill_items bi ON bi.bill_id = b.id
	WHERE b.factory_id = $1
	  AND EXTRACT(YEAR FROM b.created_at) = $2
	  AND EXTRACT(MONTH FROM b.created_at) = $3`

	var total int64
	if err := r.pool.QueryRow(ctx, query, factoryID, year, month).Scan(&total); err != nil {
		return 0, fmt.Errorf("reports.MonthlyTotal: %w", err)
	}
	return total, nil
}
