package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rkeng/billing-api/internal/application/billing"
	"github.com/rkeng/billing-api/internal/domain/repository"
)

// Ensure TxRunner implements billing.BillTxRunner.
var _ billing.BillTxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction. Read-committed
// isolation is sufficient for the bill mutations; the replace-items
// delete+insert must never be observable half done.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner with the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, executes fn with a bill repo bound to the tx and
// commits, or rolls back when fn errors.
func (r *TxRunner) Run(ctx context.Context, fn func(billRepo repository.BillRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewBillRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
