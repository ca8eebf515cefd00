package inventory

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// DefaultLowStockThreshold umbral por defecto del reporte de bajo stock.
const DefaultLowStockThreshold = 50

var tableNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidTableName compuerta estricta para el nombre de la tabla de farmacia:
// solo letras, dígitos y guion bajo.
func ValidTableName(name string) bool {
	return tableNamePattern.MatchString(name)
}

// CanonicalTableName nombre de tabla tal como lo guarda PostgreSQL para un identificador
// sin comillas: en minúsculas. Así "Farmacia_Centro" y "farmacia_centro" son la misma tabla.
func CanonicalTableName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeName clave de comparación de nombres de producto: case-folding y sin espacios.
// "Acido  Folico" y "acidofolico" producen la misma clave.
func NormalizeName(name string) string {
	folded := cases.Fold().String(name)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, folded)
}
