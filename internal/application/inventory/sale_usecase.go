package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/inventory"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// SaleUseCase registra ventas de bodega: cabecera, detalles y descuento de stock en una
// sola transacción. Si cualquier paso falla no se persiste nada de la venta.
type SaleUseCase struct {
	txRunner       repository.TxRunner
	strictSubtotal bool
	now            func() time.Time
}

// NewSaleUseCase construye el caso de uso. Con strictSubtotal se rechazan líneas cuyo
// subtotal no sea cantidad × precio unitario.
func NewSaleUseCase(txRunner repository.TxRunner, strictSubtotal bool) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, strictSubtotal: strictSubtotal, now: time.Now}
}

// RecordSale valida las líneas antes de abrir la transacción y luego, por cada línea,
// descuenta el stock (sin piso: puede quedar negativo) e inserta el detalle.
func (uc *SaleUseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.RecordSaleResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.Validation("Debe incluir al menos un medicamento en la venta")
	}
	for i, l := range in.Lines {
		if err := uc.validateLine(i, l); err != nil {
			return nil, err
		}
	}

	var saleID int64
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		id, err := tx.Sales().Create(ctx, uc.now())
		if err != nil {
			return err
		}
		for _, l := range in.Lines {
			if _, err := tx.Items().AdjustStock(ctx, l.ItemID, -l.Quantity); err != nil {
				return err
			}
			line := &entity.SaleLine{
				SaleID:    id,
				ItemID:    l.ItemID,
				Quantity:  l.Quantity,
				UnitPrice: l.UnitPrice,
				Subtotal:  l.Subtotal,
			}
			if err := tx.Sales().AddLine(ctx, line); err != nil {
				return err
			}
		}
		saleID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.RecordSaleResponse{Message: "Venta registrada correctamente", SaleID: saleID}, nil
}

func (uc *SaleUseCase) validateLine(i int, l dto.SaleLineRequest) error {
	switch {
	case l.ItemID <= 0:
		return domain.Validation(fmt.Sprintf("detalle %d: id_medicamento inválido", i+1))
	case l.Quantity <= 0:
		return domain.Validation(fmt.Sprintf("detalle %d: la cantidad debe ser mayor a cero", i+1))
	case l.UnitPrice.LessThan(decimal.Zero) || l.Subtotal.LessThan(decimal.Zero):
		return domain.Validation(fmt.Sprintf("detalle %d: los precios no pueden ser negativos", i+1))
	}
	if uc.strictSubtotal && !inventory.SubtotalMatches(l.Quantity, l.UnitPrice, l.Subtotal) {
		return domain.Validation(fmt.Sprintf("detalle %d: el subtotal %s no coincide con cantidad × precio (%s)",
			i+1, l.Subtotal.String(), inventory.ExpectedSubtotal(l.Quantity, l.UnitPrice).String()))
	}
	return nil
}
