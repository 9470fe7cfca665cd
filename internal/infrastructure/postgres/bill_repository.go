package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rkeng/billing-api/internal/domain/entity"
	"github.com/rkeng/billing-api/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo implements the BillRepository port on PostgreSQL. Totals are never
// stored: the bills table holds only the GST flags, items hold the line math.
type BillRepo struct {
	q Querier
}

// NewBillRepository builds the adapter. Pass pool or tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

// Create persists the bill header.
func (r *BillRepo) Create(bill *entity.Bill) error {
	query := `
		INSERT INTO bills (id, factory_id, gst_enabled, gst_percent, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		bill.ID, bill.FactoryID, bill.GSTEnabled, bill.GSTPercent, bill.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// CreateItem persists one line item with its precomputed total.
func (r *BillRepo) CreateItem(item *entity.BillItem) error {
	query := `
		INSERT INTO bill_items (id, bill_id, item_name, quantity, rate, total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.BillID, item.ItemName, item.Quantity, item.Rate, item.Total,
	)
	if err != nil {
		return fmt.Errorf("insert bill item: %w", err)
	}
	return nil
}

// GetByID returns the bill or (nil, nil) when absent.
func (r *BillRepo) GetByID(id string) (*entity.Bill, error) {
	query := `
		SELECT id, factory_id, gst_enabled, gst_percent, created_at
		FROM bills WHERE id = $1`
	var b entity.Bill
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.FactoryID, &b.GSTEnabled, &b.GSTPercent, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill by id: %w", err)
	}
	return &b, nil
}

// ListByFactory lists every bill of the factory.
func (r *BillRepo) ListByFactory(factoryID string) ([]*entity.Bill, error) {
	query := `
		SELECT id, factory_id, gst_enabled, gst_percent, created_at
		FROM bills WHERE factory_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, factoryID)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bill
	for rows.Next() {
		var b entity.Bill
		if err := rows.Scan(&b.ID, &b.FactoryID, &b.GSTEnabled, &b.GSTPercent, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// GetItemsByBillID returns the current items of the bill.
func (r *BillRepo) GetItemsByBillID(billID string) ([]*entity.BillItem, error) {
	query := `
		SELECT id, bill_id, item_name, quantity, rate, total
		FROM bill_items WHERE bill_id = $1 ORDER BY item_name`
	rows, err := r.q.Query(context.Background(), query, billID)
	if err != nil {
		return nil, fmt.Errorf("list bill items: %w", err)
	}
	defer rows.Close()
	var list []*entity.BillItem
	for rows.Next() {
		var it entity.BillItem
		if err := rows.Scan(&it.ID, &it.BillID, &it.ItemName, &it.Quantity, &it.Rate, &it.Total); err != nil {
			return nil, fmt.Errorf("scan bill item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// DeleteItemsByBillID discards every item of the bill.
func (r *BillRepo) DeleteItemsByBillID(billID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM bill_items WHERE bill_id = $1`, billID)
	if err != nil {
		return fmt.Errorf("delete bill items: %w", err)
	}
	return nil
}
