package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

const columns = 11

// writeSeedSQL lee el CSV y escribe un INSERT por medicamento. Las filas con nombre vacío
// o números inválidos se omiten (se cuentan en skipped); un CSV mal formado es error.
func writeSeedSQL(in io.Reader, out io.Writer, latin1 bool) (written, skipped int, err error) {
	if latin1 {
		in = transform.NewReader(in, charmap.ISO8859_1.NewDecoder())
	}
	r := csv.NewReader(in)
	r.Comma = ';'
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = columns

	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, 0, fmt.Errorf("CSV vacío")
		}
		return 0, 0, fmt.Errorf("leer cabecera: %w", err)
	}

	fmt.Fprintln(out, "-- Medicamentos de bodega")
	fmt.Fprintln(out, "-- Generado por cmd/seed_bodega")
	fmt.Fprintln(out)
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return written, skipped, fmt.Errorf("leer fila: %w", err)
		}
		it, ok := parseItem(rec)
		if !ok {
			skipped++
			continue
		}
		fmt.Fprintf(out,
			"INSERT INTO medicamentos_bodega (nombre_generico, nombre_medico, fabricante, contenido, forma_farmaceutica, "+
				"presentacion, fecha_fabricacion, fecha_caducidad, unidades_por_caja, precio, stock)\n"+
				"VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %d, %s, %d);\n",
			quote(it.GenericName), quote(it.MedicalName), quote(it.Manufacturer), quote(it.Content),
			quote(it.PharmaceuticalForm), quote(it.Presentation),
			sqlDate(it.ManufacturedAt), sqlDate(it.ExpiresAt),
			it.UnitsPerBox, it.Price.StringFixed(2), it.Stock,
		)
		written++
	}
	return written, skipped, nil
}

func parseItem(rec []string) (entity.Item, bool) {
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}
	it := entity.Item{
		GenericName:        rec[0],
		MedicalName:        rec[1],
		Manufacturer:       rec[2],
		Content:            rec[3],
		PharmaceuticalForm: rec[4],
		Presentation:       rec[5],
	}
	if it.GenericName == "" {
		return it, false
	}
	var ok bool
	if it.ManufacturedAt, ok = parseDate(rec[6]); !ok {
		return it, false
	}
	if it.ExpiresAt, ok = parseDate(rec[7]); !ok {
		return it, false
	}
	units, err := atoiOrZero(rec[8])
	if err != nil {
		return it, false
	}
	it.UnitsPerBox = units
	// el sistema anterior exporta decimales con coma
	price, err := decimal.NewFromString(strings.ReplaceAll(orZero(rec[9]), ",", "."))
	if err != nil || price.IsNegative() {
		return it, false
	}
	it.Price = price
	stock, err := atoiOrZero(rec[10])
	if err != nil {
		return it, false
	}
	it.Stock = stock
	return it, true
}

// parseDate acepta yyyy-MM-dd o dd/MM/yyyy; vacío = sin fecha.
func parseDate(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, true
		}
	}
	return nil, false
}

func atoiOrZero(s string) (int, error) {
	return strconv.Atoi(orZero(s))
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func sqlDate(t *time.Time) string {
	if t == nil {
		return "NULL"
	}
	return quote(t.Format("2006-01-02"))
}
