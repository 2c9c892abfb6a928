package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/usecase"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/repository"
)

var _ usecase.ConversionTxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner with the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunConversion begins a transaction, hands tx-bound estimate and invoice
// repos to fn, and commits or rolls back as a unit.
func (r *TxRunner) RunConversion(ctx context.Context, fn func(
	estRepo repository.EstimateRepository,
	invRepo repository.InvoiceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewEstimateRepository(tx), NewInvoiceRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
