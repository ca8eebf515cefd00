package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja.
const (
	MovementTypeIngreso = "ingreso"
	MovementTypeEgreso  = "egreso"
)

// CashMovement entrada del libro de caja (solo inserción).
type CashMovement struct {
	ID          int64
	Description string
	Amount      decimal.Decimal // siempre positivo; el signo lo da Type
	Type        string
	Date        time.Time
}

// Balance fila única de saldo de la bodega.
type Balance struct {
	Saldo    decimal.Decimal
	Ingresos decimal.Decimal
	Egresos  decimal.Decimal
}

// Apply devuelve el saldo resultante de aplicar un movimiento.
// ingreso suma a saldo e ingresos; egreso resta de saldo y suma a egresos.
func (b Balance) Apply(movementType string, amount decimal.Decimal) Balance {
	switch movementType {
	case MovementTypeIngreso:
		b.Saldo = b.Saldo.Add(amount)
		b.Ingresos = b.Ingresos.Add(amount)
	case MovementTypeEgreso:
		b.Saldo = b.Saldo.Sub(amount)
		b.Egresos = b.Egresos.Add(amount)
	}
	return b
}
