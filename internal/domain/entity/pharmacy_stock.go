package entity

// PharmacyStock fila de un inventario externo de farmacia.
type PharmacyStock struct {
	GenericName string
	Stock       int
}
