package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest body para POST /api/v1/transacciones-bodega.
type RecordMovementRequest struct {
	Description string          `json:"descripcion" validate:"required"`
	Amount      decimal.Decimal `json:"monto"`
	Type        string          `json:"tipo" validate:"required"`
}

// BalanceResponse saldo actual de la bodega.
type BalanceResponse struct {
	Saldo    decimal.Decimal `json:"saldo"`
	Ingresos decimal.Decimal `json:"ingresos"`
	Egresos  decimal.Decimal `json:"egresos"`
}

// MovementResponse movimiento de caja.
type MovementResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"descripcion"`
	Amount      decimal.Decimal `json:"monto"`
	Type        string          `json:"tipo"`
	Date        time.Time       `json:"fecha"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Movements []MovementResponse `json:"movimientos"`
	Page      PageResponse       `json:"page"`
}
