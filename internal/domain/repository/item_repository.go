package repository

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// ItemRepository puerto de persistencia para medicamentos de bodega (DIP).
type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	List(ctx context.Context) ([]*entity.Item, error)
	// ListBelowStock medicamentos con stock < threshold, ordenados por stock ascendente.
	ListBelowStock(ctx context.Context, threshold int) ([]*entity.Item, error)
	// AdjustStock suma delta al stock en una sola sentencia (stock = stock + delta) y devuelve
	// el stock resultante. Retorna domain.ErrNotFound si el medicamento no existe.
	AdjustStock(ctx context.Context, id int64, delta int) (int, error)
}
