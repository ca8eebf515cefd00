// Package order contiene la máquina de estados de pedidos (servicio de dominio puro).
//
//	pendiente  ──Confirm──▶ confirmado
//	pendiente  ──Cancel───▶ cancelado     (terminal)
//	confirmado ──Cancel───▶ cancelado
//	pendiente  ──Complete─▶ completado    (terminal)
//	confirmado ──Complete─▶ completado
package order

import (
	"strings"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// Action transición solicitada sobre un pedido.
type Action string

const (
	ActionCancel   Action = "cancel"
	ActionConfirm  Action = "confirm"
	ActionComplete Action = "complete"
)

// Origen de una cancelación; define el prefijo de la nota.
const (
	OriginBodega   = "bodega"
	OriginFarmacia = "farmacia"
)

// Notas fijas del sistema.
const (
	NoteConfirmed = "Pedido confirmado por bodega"
	NoteCompleted = "Pedido completado por bodega"
)

// Target estado destino de la acción.
func Target(a Action) string {
	switch a {
	case ActionCancel:
		return entity.OrderStatusCancelled
	case ActionConfirm:
		return entity.OrderStatusConfirmed
	case ActionComplete:
		return entity.OrderStatusCompleted
	}
	return ""
}

// Guard evalúa si la acción es válida desde el estado actual.
// Devuelve un error de conflicto con un mensaje distinto por cada caso.
func Guard(a Action, current string) error {
	switch a {
	case ActionCancel:
		switch current {
		case entity.OrderStatusCancelled:
			return domain.Conflict("Este pedido ya fue cancelado anteriormente")
		case entity.OrderStatusCompleted:
			return domain.Conflict("No se puede cancelar un pedido que ya fue completado")
		}
	case ActionConfirm:
		switch current {
		case entity.OrderStatusCancelled:
			return domain.Conflict("No se puede confirmar un pedido que ha sido cancelado")
		case entity.OrderStatusCompleted:
			return domain.Conflict("No se puede confirmar un pedido que ya fue completado")
		case entity.OrderStatusConfirmed:
			return domain.Conflict("Este pedido ya está confirmado")
		}
	case ActionComplete:
		switch current {
		case entity.OrderStatusCancelled:
			return domain.Conflict("No se puede completar un pedido cancelado")
		case entity.OrderStatusCompleted:
			return domain.Conflict("Este pedido ya está completado")
		}
	default:
		return domain.Validation("acción de pedido desconocida")
	}
	return nil
}

// IsTerminal indica si el estado no admite más transiciones.
func IsTerminal(status string) bool {
	return status == entity.OrderStatusCancelled || status == entity.OrderStatusCompleted
}

// CancelNote arma la nota de cancelación "Cancelado por <origen>: <motivo>".
func CancelNote(origin, reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", domain.Validation("Se requiere especificar un motivo para cancelar el pedido")
	}
	switch origin {
	case OriginBodega, OriginFarmacia:
	default:
		return "", domain.Validation("origen de cancelación inválido")
	}
	return "Cancelado por " + origin + ": " + reason, nil
}

// AppendNote agrega note al historial, separando con "; " si ya había notas.
func AppendNote(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + "; " + note
}
