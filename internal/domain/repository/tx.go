package repository

import "context"

// Tx repositorios atados a una misma transacción de BD.
type Tx interface {
	Items() ItemRepository
	Sales() SaleRepository
	Movements() CashMovementRepository
	Balance() BalanceRepository
	Orders() OrderRepository
	PharmacyStock() PharmacyStockRepository
	// Savepoint ejecuta fn en una subtransacción: si fn falla solo se deshace lo hecho
	// dentro de ella y la transacción externa sigue utilizable.
	Savepoint(ctx context.Context, fn func(tx Tx) error) error
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn termina sin error,
// Rollback en cualquier otro caso. Los fallos del store se devuelven como
// domain.ErrTransactionFailed; los errores de dominio de fn se devuelven tal cual.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx Tx) error) error
}
