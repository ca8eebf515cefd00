package entity

import "time"

// Estados de un pedido.
const (
	OrderStatusPending   = "pendiente"
	OrderStatusConfirmed = "confirmado"
	OrderStatusCancelled = "cancelado"
	OrderStatusCompleted = "completado"
)

// Order pedido de traslado/compra. Lo crea un sistema externo; aquí solo se
// transiciona el estado y se agregan notas.
type Order struct {
	ID        int64
	Status    string
	Notes     string // historial separado por "; "
	UpdatedAt time.Time
}
