package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// LowStockUseCase consultas de inventario de bodega: listado completo y reporte de bajo stock.
// Solo lectura; no muta nada.
type LowStockUseCase struct {
	txRunner         repository.TxRunner
	defaultThreshold int
	pdf              LowStockPDFGenerator
	now              func() time.Time
}

// NewLowStockUseCase construye el caso de uso. pdf puede ser nil si no se expone el reporte PDF.
func NewLowStockUseCase(txRunner repository.TxRunner, defaultThreshold int, pdf LowStockPDFGenerator) *LowStockUseCase {
	return &LowStockUseCase{
		txRunner:         txRunner,
		defaultThreshold: defaultThreshold,
		pdf:              pdf,
		now:              time.Now,
	}
}

// DefaultThreshold umbral configurado para cuando el cliente no envía uno.
func (uc *LowStockUseCase) DefaultThreshold() int { return uc.defaultThreshold }

// ListItems inventario completo de bodega.
func (uc *LowStockUseCase) ListItems(ctx context.Context) ([]dto.ItemResponse, error) {
	var items []*entity.Item
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		var err error
		items, err = tx.Items().List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

// GetLowStock medicamentos con stock estrictamente menor al umbral, de menor a mayor stock.
func (uc *LowStockUseCase) GetLowStock(ctx context.Context, threshold int) ([]dto.ItemResponse, error) {
	items, err := uc.lowStockItems(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

// LowStockReportPDF renderiza el reporte de bajo stock como PDF.
func (uc *LowStockUseCase) LowStockReportPDF(ctx context.Context, threshold int) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.NotFound("reporte PDF no disponible")
	}
	items, err := uc.lowStockItems(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateLowStockPDF(ctx, LowStockReport{
		Threshold:   threshold,
		GeneratedAt: uc.now(),
		Items:       items,
	})
}

func (uc *LowStockUseCase) lowStockItems(ctx context.Context, threshold int) ([]*entity.Item, error) {
	if threshold <= 0 {
		return nil, domain.Validation("el umbral de stock debe ser mayor a cero")
	}
	var items []*entity.Item
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		var err error
		items, err = tx.Items().ListBelowStock(ctx, threshold)
		return err
	})
	return items, err
}

func toItemResponses(items []*entity.Item) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ItemFromEntity(it))
	}
	return out
}
