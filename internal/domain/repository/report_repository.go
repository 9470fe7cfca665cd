package repository

import "context"

// ReportRepository read-only aggregation queries over committed bill state.
type ReportRepository interface {
	// MonthlyTotal sums item totals across all bills of the factory whose
	// creation timestamp falls within the given year/month.
	MonthlyTotal(ctx context.Context, factoryID string, year, month int) (int64, error)
}
