package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.PharmacyStockRepository = (*PharmacyStockRepo)(nil)

// PharmacyStockRepo inventarios de farmacia (una tabla por farmacia: nombre_generico, stock).
// El nombre de tabla llega validado como identificador y se cita con pgx.Identifier.
type PharmacyStockRepo struct {
	q Querier
}

// NewPharmacyStockRepository construye el adaptador.
func NewPharmacyStockRepository(q Querier) *PharmacyStockRepo {
	return &PharmacyStockRepo{q: q}
}

// TableExists consulta el catálogo con to_regclass (NULL si la relación no existe).
func (r *PharmacyStockRepo) TableExists(ctx context.Context, table string) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT to_regclass($1) IS NOT NULL`, quoteTable(table)).Scan(&exists); err != nil {
		return false, fmt.Errorf("check table: %w", err)
	}
	return exists, nil
}

// FindByName coincidencia exacta primero; si no, ignorando mayúsculas y espacios.
func (r *PharmacyStockRepo) FindByName(ctx context.Context, table, name string) (*entity.PharmacyStock, error) {
	query := fmt.Sprintf(`
		SELECT nombre_generico, stock
		FROM %s
		WHERE nombre_generico = $1
		   OR regexp_replace(lower(nombre_generico), '\s', '', 'g') = regexp_replace(lower($1), '\s', '', 'g')
		ORDER BY (nombre_generico = $1) DESC, nombre_generico
		LIMIT 1`, quoteTable(table))
	var p entity.PharmacyStock
	if err := r.q.QueryRow(ctx, query, name).Scan(&p.GenericName, &p.Stock); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		if isUndefinedTable(err) {
			return nil, domain.NotFound("Tabla de farmacia no encontrada")
		}
		return nil, fmt.Errorf("find pharmacy product: %w", err)
	}
	return &p, nil
}

// AddStock suma quantity al stock del producto y devuelve el valor resultante.
func (r *PharmacyStockRepo) AddStock(ctx context.Context, table, genericName string, quantity int) (int, error) {
	query := fmt.Sprintf(`UPDATE %s SET stock = stock + $2 WHERE nombre_generico = $1 RETURNING stock`, quoteTable(table))
	var stock int
	if err := r.q.QueryRow(ctx, query, genericName, quantity).Scan(&stock); err != nil {
		if isNoRows(err) {
			return 0, domain.NotFound("Producto no encontrado en el inventario")
		}
		return 0, fmt.Errorf("update pharmacy stock: %w", err)
	}
	return stock, nil
}
