package billing

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/rkeng/billing-api/internal/application/dto"
	"github.com/rkeng/billing-api/internal/domain"
	domainbilling "github.com/rkeng/billing-api/internal/domain/billing"
	"github.com/rkeng/billing-api/internal/domain/entity"
	"github.com/rkeng/billing-api/internal/domain/repository"
)

// BillUseCase owns bills and their line items: creation, listing, full
// item replacement and the document snapshot. All money math goes through
// the domain billing package.
type BillUseCase struct {
	txRunner    BillTxRunner
	billRepo    repository.BillRepository
	factoryRepo repository.FactoryRepository
	companyName string // printed into the WhatsApp share message
}

// NewBillUseCase builds the use case.
func NewBillUseCase(
	txRunner BillTxRunner,
	billRepo repository.BillRepository,
	factoryRepo repository.FactoryRepository,
	companyName string,
) *BillUseCase {
	return &BillUseCase{
		txRunner:    txRunner,
		billRepo:    billRepo,
		factoryRepo: factoryRepo,
		companyName: companyName,
	}
}

// validateItems rejects empty sets, blank names and negative quantities/rates.
func validateItems(items []dto.BillItemRequest) error {
	if len(items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, it := range items {
		if it.ItemName == "" || it.Quantity < 0 || it.Rate < 0 {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// buildItems materializes item entities with computed line totals.
func buildItems(billID string, items []dto.BillItemRequest) []*entity.BillItem {
	out := make([]*entity.BillItem, 0, len(items))
	for _, it := range items {
		out = append(out, &entity.BillItem{
			ID:       uuid.New().String(),
			BillID:   billID,
			ItemName: it.ItemName,
			Quantity: it.Quantity,
			Rate:     it.Rate,
			Total:    domainbilling.ItemTotal(it.Quantity, it.Rate),
		})
	}
	return out
}

// CreateBill persists a bill and its items in one transaction and returns the
// checkout triple. The factory must belong to ownerID; a foreign factory is
// indistinguishable from a missing one (domain.ErrNotFound).
func (uc *BillUseCase) CreateBill(ctx context.Context, ownerID string, in dto.CreateBillRequest) (*dto.BillSummaryResponse, error) {
	if in.GSTPercent < 0 || in.GSTPercent > 100 {
		return nil, domain.ErrInvalidInput
	}
	if err := validateItems(in.Items); err != nil {
		return nil, err
	}
	factory, err := uc.factoryRepo.GetByIDAndOwner(in.FactoryID, ownerID)
	if err != nil {
		return nil, err
	}
	if factory == nil {
		return nil, domain.ErrNotFound
	}

	bill := &entity.Bill{
		ID:         uuid.New().String(),
		FactoryID:  in.FactoryID,
		GSTEnabled: in.GSTEnabled,
		GSTPercent: in.GSTPercent,
		CreatedAt:  time.Now(),
	}
	items := buildItems(bill.ID, in.Items)

	err = uc.txRunner.Run(ctx, func(billRepo repository.BillRepository) error {
		if err := billRepo.Create(bill); err != nil {
			return err
		}
		for _, item := range items {
			if err := billRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	totals := domainbilling.Compute(items, bill.GSTEnabled, bill.GSTPercent)
	return &dto.BillSummaryResponse{
		BillID:     bill.ID,
		SubTotal:   totals.SubTotal,
		GSTAmount:  totals.GSTAmount,
		GrandTotal: totals.GrandTotal,
	}, nil
}

// ListBills returns every bill of the factory with totals recomputed from the
// current item rows (no date filtering; reporting handles periods).
func (uc *BillUseCase) ListBills(ownerID, factoryID string) ([]dto.BillResponse, error) {
	factory, err := uc.factoryRepo.GetByIDAndOwner(factoryID, ownerID)
	if err != nil {
		return nil, err
	}
	if factory == nil {
		return nil, domain.ErrNotFound
	}
	bills, err := uc.billRepo.ListByFactory(factoryID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BillResponse, 0, len(bills))
	for _, b := range bills {
		items, err := uc.billRepo.GetItemsByBillID(b.ID)
		if err != nil {
			return nil, err
		}
		totals := domainbilling.Compute(items, b.GSTEnabled, b.GSTPercent)
		out = append(out, dto.BillResponse{
			ID:         b.ID,
			FactoryID:  b.FactoryID,
			GSTEnabled: b.GSTEnabled,
			GSTPercent: b.GSTPercent,
			SubTotal:   totals.SubTotal,
			GSTAmount:  totals.GSTAmount,
			GrandTotal: totals.GrandTotal,
			CreatedAt:  b.CreatedAt,
		})
	}
	return out, nil
}

// ReplaceItems discards every item of the bill and inserts the new set in one
// transaction; a reader can never observe the bill between delete and insert.
// Repeating the call with the same items yields the same totals and item count.
func (uc *BillUseCase) ReplaceItems(ctx context.Context, ownerID, billID string, in dto.UpdateBillRequest) (*dto.UpdateBillResponse, error) {
	if err := validateItems(in.Items); err != nil {
		return nil, err
	}
	bill, err := uc.getOwnedBill(ownerID, billID)
	if err != nil {
		return nil, err
	}

	items := buildItems(bill.ID, in.Items)
	err = uc.txRunner.Run(ctx, func(billRepo repository.BillRepository) error {
		if err := billRepo.DeleteItemsByBillID(bill.ID); err != nil {
			return err
		}
		for _, item := range items {
			if err := billRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	totals := domainbilling.Compute(items, bill.GSTEnabled, bill.GSTPercent)
	return &dto.UpdateBillResponse{
		Message:    "Bill updated",
		SubTotal:   totals.SubTotal,
		GSTAmount:  totals.GSTAmount,
		GrandTotal: totals.GrandTotal,
	}, nil
}

// Snapshot produces the read-only projection handed to the document renderer,
// with totals recomputed fresh from the current item rows.
func (uc *BillUseCase) Snapshot(ownerID, billID string) (*BillSnapshot, error) {
	bill, err := uc.getOwnedBill(ownerID, billID)
	if err != nil {
		return nil, err
	}
	items, err := uc.billRepo.GetItemsByBillID(bill.ID)
	if err != nil {
		return nil, err
	}
	snap := &BillSnapshot{
		BillID: bill.ID,
		Date:   bill.CreatedAt,
		Items:  make([]SnapshotItem, 0, len(items)),
		Totals: domainbilling.Compute(items, bill.GSTEnabled, bill.GSTPercent),
	}
	for _, it := range items {
		snap.Items = append(snap.Items, SnapshotItem{
			ItemName: it.ItemName,
			Quantity: it.Quantity,
			Rate:     it.Rate,
			Total:    it.Total,
		})
	}
	return snap, nil
}

// WhatsAppLink builds the wa.me deep link for sharing a bill.
func (uc *BillUseCase) WhatsAppLink(ownerID, billID string) (*dto.WhatsAppLinkResponse, error) {
	bill, err := uc.getOwnedBill(ownerID, billID)
	if err != nil {
		return nil, err
	}
	message := fmt.Sprintf("Bill #%s - %s", bill.ID, uc.companyName)
	return &dto.WhatsAppLinkResponse{
		WhatsAppLink: "https://wa.me/?text=" + url.QueryEscape(message),
	}, nil
}

// getOwnedBill loads a bill and verifies its factory belongs to ownerID.
// Missing bill, missing factory and foreign factory all collapse into
// domain.ErrNotFound.
func (uc *BillUseCase) getOwnedBill(ownerID, billID string) (*entity.Bill, error) {
	bill, err := uc.billRepo.GetByID(billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	factory, err := uc.factoryRepo.GetByIDAndOwner(bill.FactoryID, ownerID)
	if err != nil {
		return nil, err
	}
	if factory == nil {
		return nil, domain.ErrNotFound
	}
	return bill, nil
}
