package repository

import "github.com/rkeng/billing-api/internal/domain/entity"

// BillRepository defines the persistence port for Bill and its items.
// Lookup methods return (nil, nil) when no row matches.
type BillRepository interface {
	Create(bill *entity.Bill) error
	CreateItem(item *entity.BillItem) error
	GetByID(id string) (*entity.Bill, error)
	ListByFactory(factoryID string) ([]*entity.Bill, error)
	GetItemsByBillID(billID string) ([]*entity.BillItem, error)
	// DeleteItemsByBillID discards every item of the bill. Callers replacing
	// items must run this and the subsequent inserts in one transaction.
	DeleteItemsByBillID(billID string) error
}
