package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un medicamento del inventario central (bodega).
// Stock es entero y puede quedar negativo tras una venta (no hay piso en la venta).
type Item struct {
	ID                 int64
	GenericName        string // NombreGenerico, usado para cruzar con inventarios de farmacia
	MedicalName        string
	Manufacturer       string
	Content            string
	PharmaceuticalForm string
	Presentation       string
	ManufacturedAt     *time.Time
	ExpiresAt          *time.Time
	UnitsPerBox        int
	Price              decimal.Decimal
	Stock              int
}
