package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de medicamentos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `
	id, nombre_generico, nombre_medico, fabricante, contenido, forma_farmaceutica,
	presentacion, fecha_fabricacion, fecha_caducidad, unidades_por_caja, precio, stock`

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(
		&it.ID, &it.GenericName, &it.MedicalName, &it.Manufacturer, &it.Content, &it.PharmaceuticalForm,
		&it.Presentation, &it.ManufacturedAt, &it.ExpiresAt, &it.UnitsPerBox, &it.Price, &it.Stock,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// GetByID obtiene un medicamento por ID; nil, nil si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	query := `SELECT` + itemColumns + ` FROM medicamentos_bodega WHERE id = $1`
	it, err := scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// List todos los medicamentos ordenados por ID.
func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	return r.list(ctx, `SELECT`+itemColumns+` FROM medicamentos_bodega ORDER BY id`)
}

// ListBelowStock medicamentos con stock estrictamente menor al umbral, de menor a mayor stock.
func (r *ItemRepo) ListBelowStock(ctx context.Context, threshold int) ([]*entity.Item, error) {
	return r.list(ctx, `SELECT`+itemColumns+`
		FROM medicamentos_bodega WHERE stock < $1 ORDER BY stock ASC, id ASC`, threshold)
}

func (r *ItemRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// AdjustStock aplica stock = stock + delta en una sola sentencia.
func (r *ItemRepo) AdjustStock(ctx context.Context, id int64, delta int) (int, error) {
	query := `UPDATE medicamentos_bodega SET stock = stock + $2 WHERE id = $1 RETURNING stock`
	var stock int
	if err := r.q.QueryRow(ctx, query, id, delta).Scan(&stock); err != nil {
		if isNoRows(err) {
			return 0, domain.NotFound(fmt.Sprintf("Medicamento %d no encontrado", id))
		}
		return 0, fmt.Errorf("adjust stock: %w", err)
	}
	return stock, nil
}
