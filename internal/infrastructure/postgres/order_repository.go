package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo pedidos. Solo lectura y cambio de estado.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	return r.get(ctx, `SELECT id, estado, COALESCE(notas, ''), fecha_actualizacion FROM pedidos WHERE id = $1`, id)
}

// GetForUpdate obtiene el pedido y bloquea la fila hasta el fin de la transacción.
func (r *OrderRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Order, error) {
	return r.get(ctx, `SELECT id, estado, COALESCE(notas, ''), fecha_actualizacion FROM pedidos WHERE id = $1 FOR UPDATE`, id)
}

func (r *OrderRepo) get(ctx context.Context, query string, id int64) (*entity.Order, error) {
	var o entity.Order
	if err := r.q.QueryRow(ctx, query, id).Scan(&o.ID, &o.Status, &o.Notes, &o.UpdatedAt); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// UpdateStatus persiste estado, notas y fecha de actualización.
func (r *OrderRepo) UpdateStatus(ctx context.Context, o *entity.Order) error {
	query := `UPDATE pedidos SET estado = $2, notas = $3, fecha_actualizacion = $4 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, o.ID, o.Status, o.Notes, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("Pedido no encontrado")
	}
	return nil
}
