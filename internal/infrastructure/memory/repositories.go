package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/inventory"
)

type itemRepo struct{ t *memTx }

func (r itemRepo) GetByID(_ context.Context, id int64) (*entity.Item, error) {
	it, ok := r.t.st.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r itemRepo) List(_ context.Context) ([]*entity.Item, error) {
	return r.sorted(func(entity.Item) bool { return true }, func(a, b entity.Item) bool { return a.ID < b.ID }), nil
}

func (r itemRepo) ListBelowStock(_ context.Context, threshold int) ([]*entity.Item, error) {
	return r.sorted(
		func(it entity.Item) bool { return it.Stock < threshold },
		func(a, b entity.Item) bool {
			if a.Stock != b.Stock {
				return a.Stock < b.Stock
			}
			return a.ID < b.ID
		},
	), nil
}

func (r itemRepo) sorted(keep func(entity.Item) bool, less func(a, b entity.Item) bool) []*entity.Item {
	list := make([]entity.Item, 0, len(r.t.st.items))
	for _, it := range r.t.st.items {
		if keep(it) {
			list = append(list, it)
		}
	}
	sort.Slice(list, func(i, j int) bool { return less(list[i], list[j]) })
	out := make([]*entity.Item, len(list))
	for i := range list {
		out[i] = &list[i]
	}
	return out
}

func (r itemRepo) AdjustStock(_ context.Context, id int64, delta int) (int, error) {
	it, ok := r.t.st.items[id]
	if !ok {
		return 0, domain.NotFound(fmt.Sprintf("Medicamento %d no encontrado", id))
	}
	it.Stock += delta
	r.t.st.items[id] = it
	return it.Stock, nil
}

type saleRepo struct{ t *memTx }

func (r saleRepo) Create(_ context.Context, createdAt time.Time) (int64, error) {
	r.t.st.nextSaleID++
	id := r.t.st.nextSaleID
	r.t.st.sales[id] = entity.Sale{ID: id, CreatedAt: createdAt}
	return id, nil
}

func (r saleRepo) AddLine(_ context.Context, line *entity.SaleLine) error {
	if _, ok := r.t.st.sales[line.SaleID]; !ok {
		return fmt.Errorf("insert sale line: venta %d inexistente", line.SaleID)
	}
	r.t.st.nextLineID++
	line.ID = r.t.st.nextLineID
	r.t.st.lines = append(r.t.st.lines, *line)
	return nil
}

type movementRepo struct{ t *memTx }

func (r movementRepo) Create(_ context.Context, m *entity.CashMovement) error {
	r.t.st.nextMovementID++
	m.ID = r.t.st.nextMovementID
	r.t.st.movements = append(r.t.st.movements, *m)
	return nil
}

func (r movementRepo) List(_ context.Context, limit, offset int) ([]*entity.CashMovement, error) {
	all := r.t.st.movements
	out := make([]*entity.CashMovement, 0, min(limit, len(all)))
	// más recientes primero: recorrer al revés
	for i := len(all) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		m := all[i]
		out = append(out, &m)
	}
	return out, nil
}

type balanceRepo struct{ t *memTx }

func (r balanceRepo) Get(_ context.Context) (*entity.Balance, error) {
	if r.t.st.balance == nil {
		return nil, nil
	}
	b := *r.t.st.balance
	return &b, nil
}

func (r balanceRepo) Apply(_ context.Context, movementType string, amount decimal.Decimal) error {
	if r.t.st.balance == nil {
		return domain.NotFound("Información de saldo no encontrada")
	}
	b := r.t.st.balance.Apply(movementType, amount)
	r.t.st.balance = &b
	return nil
}

type orderRepo struct{ t *memTx }

func (r orderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	o, ok := r.t.st.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

// GetForUpdate: el mutex de Store ya serializa las transacciones.
func (r orderRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Order, error) {
	return r.GetByID(ctx, id)
}

func (r orderRepo) UpdateStatus(_ context.Context, o *entity.Order) error {
	if _, ok := r.t.st.orders[o.ID]; !ok {
		return domain.NotFound("Pedido no encontrado")
	}
	r.t.st.orders[o.ID] = *o
	return nil
}

type pharmacyRepo struct{ t *memTx }

func (r pharmacyRepo) TableExists(_ context.Context, table string) (bool, error) {
	_, ok := r.t.st.pharmacy[table]
	return ok, nil
}

func (r pharmacyRepo) FindByName(_ context.Context, table, name string) (*entity.PharmacyStock, error) {
	rows, ok := r.t.st.pharmacy[table]
	if !ok {
		return nil, fmt.Errorf("tabla %q no existe", table)
	}
	if stock, ok := rows[name]; ok {
		return &entity.PharmacyStock{GenericName: name, Stock: stock}, nil
	}
	names := make([]string, 0, len(rows))
	for n := range rows {
		names = append(names, n)
	}
	sort.Strings(names)
	key := inventory.NormalizeName(name)
	for _, n := range names {
		if inventory.NormalizeName(n) == key {
			return &entity.PharmacyStock{GenericName: n, Stock: rows[n]}, nil
		}
	}
	return nil, nil
}

func (r pharmacyRepo) AddStock(_ context.Context, table, genericName string, quantity int) (int, error) {
	rows, ok := r.t.st.pharmacy[table]
	if !ok {
		return 0, fmt.Errorf("tabla %q no existe", table)
	}
	stock, ok := rows[genericName]
	if !ok {
		return 0, domain.NotFound("Producto no encontrado en el inventario")
	}
	rows[genericName] = stock + quantity
	return stock + quantity, nil
}
