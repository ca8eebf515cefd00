package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas de bodega y sus detalles.
type SaleRepository interface {
	// Create inserta la cabecera y devuelve el ID asignado.
	Create(ctx context.Context, createdAt time.Time) (int64, error)
	AddLine(ctx context.Context, line *entity.SaleLine) error
}
