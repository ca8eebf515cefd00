package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// LowStockReport datos del reporte de bajo stock para el generador de PDF.
type LowStockReport struct {
	Threshold   int
	GeneratedAt time.Time
	Items       []*entity.Item
}

// LowStockPDFGenerator puerto para renderizar el reporte (infraestructura/pdf).
type LowStockPDFGenerator interface {
	GenerateLowStockPDF(ctx context.Context, report LowStockReport) ([]byte, error)
}
