package reports

import (
	"context"

	"github.com/rkeng/billing-api/internal/application/dto"
	"github.com/rkeng/billing-api/internal/domain"
	"github.com/rkeng/billing-api/internal/domain/repository"
)

// MonthlyReportUseCase sums bill item totals across a factory for one
// calendar month. Read-only: it never mutates persisted state.
type MonthlyReportUseCase struct {
	reportRepo  repository.ReportRepository
	factoryRepo repository.FactoryRepository
}

// NewMonthlyReportUseCase builds the use case.
func NewMonthlyReportUseCase(reportRepo repository.ReportRepository, factoryRepo repository.FactoryRepository) *MonthlyReportUseCase {
	return &MonthlyReportUseCase{reportRepo: reportRepo, factoryRepo: factoryRepo}
}

// MonthlyTotal aggregates item totals over bills created within year/month.
// The factory must belong to ownerID; a foreign factory is domain.ErrNotFound.
func (uc *MonthlyReportUseCase) MonthlyTotal(ctx context.Context, ownerID, factoryID string, year, month int) (*dto.MonthlyReportResponse, error) {
	if year <= 0 || month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}
	factory, err := uc.factoryRepo.GetByIDAndOwner(factoryID, ownerID)
	if err != nil {
		return nil, err
	}
	if factory == nil {
		return nil, domain.ErrNotFound
	}
	total, err := uc.reportRepo.MonthlyTotal(ctx, factoryID, year, month)
	if err != nil {
		return nil, err
	}
	return &dto.MonthlyReportResponse{
		FactoryID:   factoryID,
		Year:        year,
		Month:       month,
		TotalAmount: total,
	}, nil
}
