package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas de bodega y sus detalles.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la cabecera y devuelve el ID generado.
func (r *SaleRepo) Create(ctx context.Context, createdAt time.Time) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, `INSERT INTO ventas_bodega (fecha_venta) VALUES ($1) RETURNING id`, createdAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert sale: %w", err)
	}
	return id, nil
}

// AddLine inserta un detalle de venta y asigna su ID.
func (r *SaleRepo) AddLine(ctx context.Context, line *entity.SaleLine) error {
	query := `
		INSERT INTO detalles_venta_bodega (id_venta, id_medicamento, cantidad, precio_unitario, precio_subtotal)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, line.SaleID, line.ItemID, line.Quantity, line.UnitPrice, line.Subtotal).Scan(&line.ID)
	if err != nil {
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}
