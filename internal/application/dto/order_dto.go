package dto

import "time"

// CancelOrderRequest body para POST /api/v1/{bodega|farmacias}/cancelar-pedido.
type CancelOrderRequest struct {
	OrderID int64  `json:"pedido_id" validate:"required,gt=0"`
	Reason  string `json:"motivo" validate:"required"`
}

// OrderIDRequest body para confirmar-pedido y marcar-pedido-completado.
type OrderIDRequest struct {
	OrderID int64 `json:"pedido_id" validate:"required,gt=0"`
}

// OrderTransitionResponse resultado de una transición de pedido.
type OrderTransitionResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"pedido_id"`
	Status  string `json:"estado"`
	Reason  string `json:"motivo,omitempty"`
}

// OrderResponse pedido tal como lo ve la bodega.
type OrderResponse struct {
	ID        int64     `json:"id"`
	Status    string    `json:"estado"`
	Notes     string    `json:"notas"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}
