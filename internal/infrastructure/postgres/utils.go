package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isNoRows indica si la consulta no devolvió filas.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isUndefinedTable verifica si un error es relation does not exist (42P01).
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42P01"
	}
	return false
}

// quoteTable cita un identifier ya validado (solo [a-zA-Z0-9_]) para interpolarlo en SQL.
// Con comillas el nombre distingue mayúsculas: llega ya en minúsculas (inventory.CanonicalTableName).
func quoteTable(table string) string {
	return pgx.Identifier{table}.Sanitize()
}
