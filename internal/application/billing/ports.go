package billing

import (
	"context"
	"time"

	domainbilling "github.com/rkeng/billing-api/internal/domain/billing"
	"github.com/rkeng/billing-api/internal/domain/repository"
)

// BillTxRunner runs a function inside one transaction with a bill repository
// bound to it. Create-bill and replace-items must go through it so the
// delete+insert sequence is never split across a crash or concurrency boundary.
type BillTxRunner interface {
	Run(ctx context.Context, fn func(billRepo repository.BillRepository) error) error
}

// SnapshotItem is one typed line handed to the document renderer; values are
// copied out of the persisted row, never dynamic.
type SnapshotItem struct {
	ItemName string
	Quantity int64
	Rate     int64
	Total    int64
}

// BillSnapshot is the read-only projection of a bill for document rendering.
// Totals are recomputed fresh from the current item rows, not read from any
// cached field.
type BillSnapshot struct {
	BillID string
	Date   time.Time
	Items  []SnapshotItem
	Totals domainbilling.Totals
}

// CompanyInfo issuer identity printed on the document header.
type CompanyInfo struct {
	Name    string
	Address string
	Phone   string
}

// BillPDFGenerator renders a finalized bill snapshot into PDF bytes.
// Implementations must be pure: no access to persisted state.
type BillPDFGenerator interface {
	GenerateBillPDF(ctx context.Context, snap *BillSnapshot, company CompanyInfo) ([]byte, error)
}
