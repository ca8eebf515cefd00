package inventory

import (
	"github.com/shopspring/decimal"
)

// ExpectedSubtotal cantidad × precio unitario, redondeado a 2 decimales (NUMERIC(10,2)).
func ExpectedSubtotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// SubtotalMatches compara el subtotal enviado por el cliente contra el calculado.
func SubtotalMatches(quantity int, unitPrice, subtotal decimal.Decimal) bool {
	return ExpectedSubtotal(quantity, unitPrice).Equal(subtotal.Round(2))
}
