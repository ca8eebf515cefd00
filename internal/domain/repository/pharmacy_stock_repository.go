package repository

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// PharmacyStockRepository acceso a inventarios externos de farmacia. La tabla llega ya
// validada como identificador; el adaptador se encarga de citarla.
type PharmacyStockRepository interface {
	TableExists(ctx context.Context, table string) (bool, error)
	// FindByName busca por nombre exacto o normalizado (minúsculas, sin espacios). nil, nil si no existe.
	FindByName(ctx context.Context, table, name string) (*entity.PharmacyStock, error)
	// AddStock suma quantity al producto y devuelve el stock resultante.
	AddStock(ctx context.Context, table, genericName string, quantity int) (int, error)
}
