package repository

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// OrderRepository puerto para pedidos. El core no crea pedidos, solo los transiciona.
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	// GetForUpdate obtiene el pedido y bloquea la fila (SELECT FOR UPDATE). nil, nil si no existe.
	GetForUpdate(ctx context.Context, id int64) (*entity.Order, error)
	UpdateStatus(ctx context.Context, order *entity.Order) error
}
