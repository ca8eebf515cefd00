// seed_bodega genera un script SQL para poblar medicamentos_bodega a partir de un
// CSV exportado del sistema anterior (separador ';', codificación ISO-8859-1 por defecto).
//
// Uso: go run ./cmd/seed_bodega [-utf8] [ruta/medicamentos.csv]
// Por defecto busca medicamentos.csv en el directorio actual.
// Escribe: migrations/002_seed_medicamentos.sql
//
// Columnas esperadas (con cabecera): nombre_generico; nombre_medico; fabricante; contenido;
// forma_farmaceutica; presentacion; fecha_fabricacion; fecha_caducidad; unidades_por_caja; precio; stock
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	utf8 := flag.Bool("utf8", false, "el CSV ya viene en UTF-8")
	flag.Parse()

	csvPath := "medicamentos.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "migrations", "002_seed_medicamentos.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	n, skipped, err := writeSeedSQL(f, out, !*utf8)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d medicamentos (%d filas omitidas)\n", outPath, n, skipped)
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
