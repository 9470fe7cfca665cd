package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkeng/billing-api/internal/application/reports"
	"github.com/rkeng/billing-api/internal/domain"
	"github.com/rkeng/billing-api/internal/domain/entity"
)

// fakeReportRepo aggregates in memory the way the SQL query does: only bills
// whose creation timestamp falls inside the month contribute.
type fakeReportRepo struct {
	bills map[string]*entity.Bill
	items map[string][]*entity.BillItem
}

func (r *fakeReportRepo) MonthlyTotal(_ context.Context, factoryID string, year, month int) (int64, error) {
	var total int64
	for _, b := range r.bills {
		if b.FactoryID != factoryID {
			continue
		}
		if b.CreatedAt.Year() != year || int(b.CreatedAt.Month()) != month {
			continue
		}
		for _, it := range r.items[b.ID] {
			total += it.Total
		}
	}
	return total, nil
}

type fakeFactoryRepo struct {
	factories map[string]*entity.Factory
}

func (r *fakeFactoryRepo) Create(f *entity.Factory) error { return nil }
func (r *fakeFactoryRepo) ListByOwner(string) ([]*entity.Factory, error) {
	return nil, nil
}
func (r *fakeFactoryRepo) GetByIDAndOwner(id, ownerID string) (*entity.Factory, error) {
	f := r.factories[id]
	if f == nil || f.OwnerID != ownerID {
		return nil, nil
	}
	return f, nil
}
func (r *fakeFactoryRepo) Delete(string, string) error { return nil }

func fixture() (*reports.MonthlyReportUseCase, *fakeReportRepo) {
	march := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	april := time.Date(2025, time.April, 2, 9, 0, 0, 0, time.UTC)

	repo := &fakeReportRepo{
		bills: map[string]*entity.Bill{
			"b1": {ID: "b1", FactoryID: "f1", CreatedAt: march},
			"b2": {ID: "b2", FactoryID: "f1", CreatedAt: april},
			"b3": {ID: "b3", FactoryID: "f2", CreatedAt: march},
		},
		items: map[string][]*entity.BillItem{
			"b1": {{Total: 90}, {Total: 10}},
			"b2": {{Total: 500}},
			"b3": {{Total: 7}},
		},
	}
	factories := &fakeFactoryRepo{factories: map[string]*entity.Factory{
		"f1": {ID: "f1", OwnerID: "owner-a"},
		"f2": {ID: "f2", OwnerID: "owner-b"},
	}}
	return reports.NewMonthlyReportUseCase(repo, factories), repo
}

func TestMonthlyTotal_FiltersByPeriod(t *testing.T) {
	uc, _ := fixture()

	out, err := uc.MonthlyTotal(context.Background(), "owner-a", "f1", 2025, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(100), out.TotalAmount, "April's bill must not leak into March")
	assert.Equal(t, 2025, out.Year)
	assert.Equal(t, 3, out.Month)

	out, err = uc.MonthlyTotal(context.Background(), "owner-a", "f1", 2025, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(500), out.TotalAmount)
}

func TestMonthlyTotal_EmptyMonth(t *testing.T) {
	uc, _ := fixture()

	out, err := uc.MonthlyTotal(context.Background(), "owner-a", "f1", 2025, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.TotalAmount)
}

func TestMonthlyTotal_ForeignFactory(t *testing.T) {
	uc, _ := fixture()

	_, err := uc.MonthlyTotal(context.Background(), "owner-a", "f2", 2025, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMonthlyTotal_InvalidPeriod(t *testing.T) {
	uc, _ := fixture()
	ctx := context.Background()

	_, err := uc.MonthlyTotal(ctx, "owner-a", "f1", 2025, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.MonthlyTotal(ctx, "owner-a", "f1", 2025, 13)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.MonthlyTotal(ctx, "owner-a", "f1", 0, 3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
