package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/repository"
)

var _ repository.SupplierOrderTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSupplierOrder abre una transacción, entrega a fn un repositorio de pedidos atado a
// ella y hace Commit solo si fn no devuelve error.
func (r *TxRunner) RunSupplierOrder(ctx context.Context, fn func(orders repository.SupplierOrderRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSupplierOrderRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return backendErr("commit transaction", err)
	}
	return nil
}
