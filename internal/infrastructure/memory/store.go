// Package memory implementa los puertos de repositorio en memoria con el mismo contrato
// transaccional que PostgreSQL: cada Run trabaja sobre una copia del estado y solo la
// publica si fn termina sin error. Las transacciones se serializan con un mutex.
// Se usa con APP_STORE=memory y en los tests de casos de uso.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.TxRunner = (*Store)(nil)

type state struct {
	items     map[int64]entity.Item
	sales     map[int64]entity.Sale
	lines     []entity.SaleLine
	movements []entity.CashMovement
	balance   *entity.Balance
	orders    map[int64]entity.Order
	pharmacy  map[string]map[string]int // tabla → NombreGenerico → stock

	nextSaleID     int64
	nextLineID     int64
	nextMovementID int64
}

func newState() *state {
	return &state{
		items:    make(map[int64]entity.Item),
		sales:    make(map[int64]entity.Sale),
		orders:   make(map[int64]entity.Order),
		pharmacy: make(map[string]map[string]int),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.sales {
		c.sales[k] = v
	}
	for k, v := range s.orders {
		c.orders[k] = v
	}
	for table, rows := range s.pharmacy {
		cp := make(map[string]int, len(rows))
		for name, stock := range rows {
			cp[name] = stock
		}
		c.pharmacy[table] = cp
	}
	c.lines = append([]entity.SaleLine(nil), s.lines...)
	c.movements = append([]entity.CashMovement(nil), s.movements...)
	if s.balance != nil {
		b := *s.balance
		c.balance = &b
	}
	c.nextSaleID = s.nextSaleID
	c.nextLineID = s.nextLineID
	c.nextMovementID = s.nextMovementID
	return c
}

// Store almacén en memoria.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore crea un almacén vacío (sin fila de saldo).
func NewStore() *Store {
	return &Store{st: newState()}
}

// Run ejecuta fn sobre una copia del estado; Commit = publicar la copia, Rollback = descartarla.
func (s *Store) Run(ctx context.Context, fn func(tx repository.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return domain.TransactionFailed("begin transaction", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(&memTx{st: work}); err != nil {
		return domain.AsTransactionFailed("la transacción fue revertida", err)
	}
	if err := ctx.Err(); err != nil {
		return domain.TransactionFailed("commit transaction", err)
	}
	s.st = work
	return nil
}

type memTx struct {
	st *state
}

func (t *memTx) Items() repository.ItemRepository                  { return itemRepo{t} }
func (t *memTx) Sales() repository.SaleRepository                  { return saleRepo{t} }
func (t *memTx) Movements() repository.CashMovementRepository      { return movementRepo{t} }
func (t *memTx) Balance() repository.BalanceRepository             { return balanceRepo{t} }
func (t *memTx) Orders() repository.OrderRepository                { return orderRepo{t} }
func (t *memTx) PharmacyStock() repository.PharmacyStockRepository { return pharmacyRepo{t} }

// Savepoint guarda una copia del estado de la transacción y la restaura si fn falla.
func (t *memTx) Savepoint(_ context.Context, fn func(tx repository.Tx) error) error {
	snapshot := t.st.clone()
	if err := fn(t); err != nil {
		*t.st = *snapshot
		return err
	}
	return nil
}
