package inventory_test

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/memory"
)

var errDriver = errors.New("conexión perdida con la base de datos")

// faultyRunner envuelve el store en memoria e inyecta fallos en llamadas concretas.
type faultyRunner struct {
	inner repository.TxRunner

	failAdjustOnCall int    // falla la N-ésima llamada a AdjustStock (1-based); 0 = nunca
	failAddStockFor  string // falla AddStock para este NombreGenerico
	addStockErr      error

	adjustCalls int
}

func (r *faultyRunner) Run(ctx context.Context, fn func(tx repository.Tx) error) error {
	return r.inner.Run(ctx, func(tx repository.Tx) error {
		return fn(&faultyTx{Tx: tx, r: r})
	})
}

type faultyTx struct {
	repository.Tx
	r *faultyRunner
}

func (t *faultyTx) Items() repository.ItemRepository {
	return &faultyItems{ItemRepository: t.Tx.Items(), r: t.r}
}

func (t *faultyTx) PharmacyStock() repository.PharmacyStockRepository {
	return &faultyPharmacy{PharmacyStockRepository: t.Tx.PharmacyStock(), r: t.r}
}

// Savepoint reenvía el decorador para que los repos dentro del savepoint también fallen.
func (t *faultyTx) Savepoint(ctx context.Context, fn func(tx repository.Tx) error) error {
	return t.Tx.Savepoint(ctx, func(repository.Tx) error { return fn(t) })
}

type faultyItems struct {
	repository.ItemRepository
	r *faultyRunner
}

func (i *faultyItems) AdjustStock(ctx context.Context, id int64, delta int) (int, error) {
	i.r.adjustCalls++
	if i.r.adjustCalls == i.r.failAdjustOnCall {
		return 0, errDriver
	}
	return i.ItemRepository.AdjustStock(ctx, id, delta)
}

type faultyPharmacy struct {
	repository.PharmacyStockRepository
	r *faultyRunner
}

func (p *faultyPharmacy) AddStock(ctx context.Context, table, genericName string, qty int) (int, error) {
	if genericName == p.r.failAddStockFor {
		return 0, p.r.addStockErr
	}
	return p.PharmacyStockRepository.AddStock(ctx, table, genericName, qty)
}

func newStore() *memory.Store {
	s := memory.NewStore()
	s.PutItem(entity.Item{ID: 1, GenericName: "Paracetamol", Price: decimal.NewFromInt(2500), Stock: 100})
	s.PutItem(entity.Item{ID: 2, GenericName: "Ibuprofeno", Price: decimal.RequireFromString("4800.50"), Stock: 40})
	s.PutItem(entity.Item{ID: 3, GenericName: "Amoxicilina", Price: decimal.NewFromInt(9900), Stock: 5})
	return s
}

func stockOf(s *memory.Store, id int64) int {
	it, _ := s.Item(id)
	return it.Stock
}

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// fakePDF registra el reporte recibido.
type fakePDF struct {
	report inventory.LowStockReport
	calls  int
}

func (f *fakePDF) GenerateLowStockPDF(_ context.Context, r inventory.LowStockReport) ([]byte, error) {
	f.calls++
	f.report = r
	return []byte("%PDF-fake"), nil
}
