package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale cabecera de una venta de bodega. El ID lo asigna el store.
type Sale struct {
	ID        int64
	CreatedAt time.Time
	Lines     []SaleLine
}

// SaleLine detalle de venta: un medicamento, cantidad y precios.
type SaleLine struct {
	ID        int64
	SaleID    int64
	ItemID    int64
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
