package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Los errores del driver (begin, sentencias, commit) salen como domain.ErrTransactionFailed.
func (r *TxRunner) Run(ctx context.Context, fn func(tx repository.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.TransactionFailed("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&pgTx{tx: tx}); err != nil {
		return domain.AsTransactionFailed("la transacción fue revertida", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.TransactionFailed("commit transaction", err)
	}
	return nil
}

type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) Items() repository.ItemRepository             { return NewItemRepository(t.tx) }
func (t *pgTx) Sales() repository.SaleRepository             { return NewSaleRepository(t.tx) }
func (t *pgTx) Movements() repository.CashMovementRepository { return NewCashMovementRepository(t.tx) }
func (t *pgTx) Balance() repository.BalanceRepository        { return NewBalanceRepository(t.tx) }
func (t *pgTx) Orders() repository.OrderRepository           { return NewOrderRepository(t.tx) }
func (t *pgTx) PharmacyStock() repository.PharmacyStockRepository {
	return NewPharmacyStockRepository(t.tx)
}

// Savepoint: pgx.Tx.Begin sobre una tx abierta emite SAVEPOINT; Rollback vuelve a él.
func (t *pgTx) Savepoint(ctx context.Context, fn func(tx repository.Tx) error) error {
	sp, err := t.tx.Begin(ctx)
	if err != nil {
		return domain.TransactionFailed("savepoint", err)
	}
	if err := fn(&pgTx{tx: sp}); err != nil {
		if rbErr := sp.Rollback(ctx); rbErr != nil {
			return domain.TransactionFailed("rollback to savepoint", rbErr)
		}
		return err
	}
	if err := sp.Commit(ctx); err != nil {
		return domain.TransactionFailed("release savepoint", err)
	}
	return nil
}
