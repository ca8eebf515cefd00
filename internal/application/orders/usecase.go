package orders

import (
	"context"
	"time"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/order"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// OrderUseCase transiciones de pedidos (cancelar, confirmar, completar).
// Cada transición es una sola transacción: lectura con bloqueo, guarda y update.
type OrderUseCase struct {
	txRunner repository.TxRunner
	now      func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner repository.TxRunner) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, now: time.Now}
}

// Cancel cancela un pedido pendiente o confirmado. origin es order.OriginBodega u order.OriginFarmacia.
func (uc *OrderUseCase) Cancel(ctx context.Context, origin string, in dto.CancelOrderRequest) (*dto.OrderTransitionResponse, error) {
	if in.OrderID <= 0 {
		return nil, domain.Validation("Se requiere el ID del pedido")
	}
	note, err := order.CancelNote(origin, in.Reason)
	if err != nil {
		return nil, err
	}
	o, err := uc.transition(ctx, in.OrderID, order.ActionCancel, note)
	if err != nil {
		return nil, err
	}
	return &dto.OrderTransitionResponse{
		Message: "Pedido cancelado exitosamente",
		OrderID: o.ID,
		Status:  o.Status,
		Reason:  in.Reason,
	}, nil
}

// Confirm confirma un pedido pendiente.
func (uc *OrderUseCase) Confirm(ctx context.Context, orderID int64) (*dto.OrderTransitionResponse, error) {
	if orderID <= 0 {
		return nil, domain.Validation("Se requiere el ID del pedido")
	}
	o, err := uc.transition(ctx, orderID, order.ActionConfirm, order.NoteConfirmed)
	if err != nil {
		return nil, err
	}
	return &dto.OrderTransitionResponse{Message: "Pedido confirmado exitosamente", OrderID: o.ID, Status: o.Status}, nil
}

// Complete marca como completado un pedido pendiente o confirmado.
func (uc *OrderUseCase) Complete(ctx context.Context, orderID int64) (*dto.OrderTransitionResponse, error) {
	if orderID <= 0 {
		return nil, domain.Validation("Se requiere el ID del pedido")
	}
	o, err := uc.transition(ctx, orderID, order.ActionComplete, order.NoteCompleted)
	if err != nil {
		return nil, err
	}
	return &dto.OrderTransitionResponse{Message: "Pedido marcado como completado exitosamente", OrderID: o.ID, Status: o.Status}, nil
}

// GetByID devuelve el pedido o domain.ErrNotFound.
func (uc *OrderUseCase) GetByID(ctx context.Context, orderID int64) (*dto.OrderResponse, error) {
	if orderID <= 0 {
		return nil, domain.Validation("Se requiere el ID del pedido")
	}
	var out *dto.OrderResponse
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		o, err := tx.Orders().GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.NotFound("Pedido no encontrado")
		}
		out = &dto.OrderResponse{ID: o.ID, Status: o.Status, Notes: o.Notes, UpdatedAt: o.UpdatedAt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *OrderUseCase) transition(ctx context.Context, orderID int64, action order.Action, note string) (*entity.Order, error) {
	var updated *entity.Order
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		o, err := tx.Orders().GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.NotFound("Pedido no encontrado")
		}
		if err := order.Guard(action, o.Status); err != nil {
			return err
		}
		o.Status = order.Target(action)
		o.Notes = order.AppendNote(o.Notes, note)
		o.UpdatedAt = uc.now()
		if err := tx.Orders().UpdateStatus(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
