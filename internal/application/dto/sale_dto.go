package dto

import "github.com/shopspring/decimal"

// SaleLineRequest un medicamento dentro de la venta.
type SaleLineRequest struct {
	ItemID    int64           `json:"id_medicamento" validate:"required,gt=0"`
	Quantity  int             `json:"cantidad" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	Subtotal  decimal.Decimal `json:"precio_subtotal"`
}

// RecordSaleRequest body para POST /api/v1/ventas-bodega.
type RecordSaleRequest struct {
	Lines []SaleLineRequest `json:"detalles" validate:"required,min=1,dive"`
}

// RecordSaleResponse venta creada.
type RecordSaleResponse struct {
	Message string `json:"mensaje"`
	SaleID  int64  `json:"id_venta"`
}
