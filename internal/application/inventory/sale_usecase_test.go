package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/domain"
)

func threeLines() dto.RecordSaleRequest {
	return dto.RecordSaleRequest{Lines: []dto.SaleLineRequest{
		{ItemID: 1, Quantity: 2, UnitPrice: dec("2500"), Subtotal: dec("5000")},
		{ItemID: 2, Quantity: 3, UnitPrice: dec("4800.50"), Subtotal: dec("14401.50")},
		{ItemID: 3, Quantity: 1, UnitPrice: dec("9900"), Subtotal: dec("9900")},
	}}
}

func TestRecordSale_DescuentaStockYRegistraDetalles(t *testing.T) {
	store := newStore()
	uc := inventory.NewSaleUseCase(store, true)

	out, err := uc.RecordSale(context.Background(), threeLines())
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.SaleID)

	assert.Equal(t, 98, stockOf(store, 1))
	assert.Equal(t, 37, stockOf(store, 2))
	assert.Equal(t, 4, stockOf(store, 3))
	sales, lines, _ := store.Counts()
	assert.Equal(t, 1, sales)
	assert.Equal(t, 3, lines)
}

func TestRecordSale_SinDetalles(t *testing.T) {
	store := newStore()
	_, err := inventory.NewSaleUseCase(store, true).RecordSale(context.Background(), dto.RecordSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Debe incluir al menos un medicamento en la venta", domain.Message(err))

	sales, _, _ := store.Counts()
	assert.Zero(t, sales)
}

func TestRecordSale_CantidadInvalidaNoTocaElStore(t *testing.T) {
	store := newStore()
	in := threeLines()
	in.Lines[2].Quantity = 0

	_, err := inventory.NewSaleUseCase(store, true).RecordSale(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 100, stockOf(store, 1))
}

func TestRecordSale_SubtotalIncorrecto(t *testing.T) {
	in := threeLines()
	in.Lines[0].Subtotal = dec("4999")

	store := newStore()
	_, err := inventory.NewSaleUseCase(store, true).RecordSale(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	sales, _, _ := store.Counts()
	assert.Zero(t, sales)

	// sin validación estricta se guarda el subtotal que envía el cliente
	_, err = inventory.NewSaleUseCase(store, false).RecordSale(context.Background(), in)
	require.NoError(t, err)
}

func TestRecordSale_FalloEnSegundoDetalle_RevierteTodo(t *testing.T) {
	store := newStore()
	runner := &faultyRunner{inner: store, failAdjustOnCall: 2}

	_, err := inventory.NewSaleUseCase(runner, true).RecordSale(context.Background(), threeLines())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransactionFailed)
	assert.ErrorIs(t, err, errDriver)

	sales, lines, _ := store.Counts()
	assert.Zero(t, sales, "no debe quedar cabecera de venta")
	assert.Zero(t, lines, "no debe quedar ningún detalle")
	assert.Equal(t, 100, stockOf(store, 1), "el stock del primer detalle debe revertirse")
	assert.Equal(t, 40, stockOf(store, 2))
	assert.Equal(t, 5, stockOf(store, 3))
}

func TestRecordSale_MedicamentoInexistente_RevierteTodo(t *testing.T) {
	store := newStore()
	in := threeLines()
	in.Lines[1].ItemID = 999

	_, err := inventory.NewSaleUseCase(store, true).RecordSale(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	sales, lines, _ := store.Counts()
	assert.Zero(t, sales+lines)
	assert.Equal(t, 100, stockOf(store, 1))
}

func TestRecordSale_StockPuedeQuedarNegativo(t *testing.T) {
	store := newStore()
	in := dto.RecordSaleRequest{Lines: []dto.SaleLineRequest{
		{ItemID: 3, Quantity: 8, UnitPrice: dec("9900"), Subtotal: dec("79200")},
	}}

	_, err := inventory.NewSaleUseCase(store, true).RecordSale(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, -3, stockOf(store, 3))
}
