package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/inventory"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// StockUseCase reabastecimiento de bodega y sincronización de stock hacia inventarios de farmacia.
type StockUseCase struct {
	txRunner      repository.TxRunner
	log           zerolog.Logger
	allowedTables map[string]struct{}
}

// NewStockUseCase construye el caso de uso. allowedTables vacío deja solo la validación
// de identificador; si trae nombres, la tabla destino debe estar en la lista.
func NewStockUseCase(txRunner repository.TxRunner, log zerolog.Logger, allowedTables []string) *StockUseCase {
	allowed := make(map[string]struct{}, len(allowedTables))
	for _, t := range allowedTables {
		if t = inventory.CanonicalTableName(t); t != "" {
			allowed[t] = struct{}{}
		}
	}
	return &StockUseCase{txRunner: txRunner, log: log, allowedTables: allowed}
}

// Replenish suma quantity al stock del medicamento. Estricto: cantidad no positiva es error.
func (uc *StockUseCase) Replenish(ctx context.Context, itemID int64, in dto.ReplenishRequest) error {
	if itemID <= 0 {
		return domain.Validation("ID de medicamento inválido")
	}
	if in.Quantity <= 0 {
		return domain.Validation("Debe proporcionar una cantidad válida para reabastecer")
	}
	return uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		_, err := tx.Items().AdjustStock(ctx, itemID, in.Quantity)
		return err
	})
}

// ReplenishBatch reabastece varios medicamentos. A diferencia de Replenish, las entradas
// inválidas (id faltante, cantidad no positiva) o de medicamentos inexistentes se omiten y
// se reportan; el lote responde éxito con el subconjunto aplicado.
func (uc *StockUseCase) ReplenishBatch(ctx context.Context, entries []dto.ReplenishBatchEntry) (*dto.ReplenishBatchResponse, error) {
	if len(entries) == 0 {
		return nil, domain.Validation("Debe proporcionar una lista válida de productos para reabastecer")
	}

	var results []dto.BatchItemResult
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		results = make([]dto.BatchItemResult, 0, len(entries))
		for _, e := range entries {
			res := dto.BatchItemResult{ItemID: e.ItemID, Quantity: e.Quantity}
			if e.ItemID <= 0 || e.Quantity <= 0 {
				uc.log.Warn().Int64("id", e.ItemID).Int("cantidad", e.Quantity).
					Msg("reabastecer-multiple: ID inválido o cantidad incorrecta, se omite")
				res.Status = dto.ItemStatusSkipped
				res.Reason = "ID inválido o cantidad incorrecta"
				results = append(results, res)
				continue
			}
			stock, err := tx.Items().AdjustStock(ctx, e.ItemID, e.Quantity)
			if errors.Is(err, domain.ErrNotFound) {
				uc.log.Warn().Int64("id", e.ItemID).Msg("reabastecer-multiple: medicamento no encontrado, se omite")
				res.Status = dto.ItemStatusSkipped
				res.Reason = "Medicamento no encontrado"
				results = append(results, res)
				continue
			}
			if err != nil {
				return err
			}
			res.Status = dto.ItemStatusApplied
			res.NewStock = &stock
			results = append(results, res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary := dto.BatchSummary{Total: len(results)}
	for _, r := range results {
		if r.Status == dto.ItemStatusApplied {
			summary.Applied++
		} else {
			summary.Skipped++
		}
	}
	return &dto.ReplenishBatchResponse{
		Message: "Medicamentos reabastecidos correctamente",
		Results: results,
		Summary: summary,
	}, nil
}

// SyncStockAcrossTable suma cantidades al inventario de una farmacia buscando cada producto
// por nombre exacto o normalizado. Devuelve un reporte por ítem: duplicados, no encontrados
// y fallos individuales quedan como error del ítem y la transacción igual hace Commit.
// Solo un fallo del mecanismo transaccional deshace todo el lote.
func (uc *StockUseCase) SyncStockAcrossTable(ctx context.Context, in dto.SyncStockRequest) (*dto.SyncStockResponse, error) {
	table := strings.TrimSpace(in.Table)
	if table == "" || in.Products == nil {
		return nil, domain.Validation("Se requiere el nombre de la tabla de farmacia y una lista de productos")
	}
	if !inventory.ValidTableName(table) {
		return nil, domain.Validation("Nombre de tabla inválido")
	}
	table = inventory.CanonicalTableName(table)
	if len(uc.allowedTables) > 0 {
		if _, ok := uc.allowedTables[table]; !ok {
			return nil, domain.Validation("La tabla de farmacia no está habilitada")
		}
	}

	var results []dto.SyncItemResult
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		exists, err := tx.PharmacyStock().TableExists(ctx, table)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NotFound("Tabla de farmacia no encontrada")
		}

		results = make([]dto.SyncItemResult, 0, len(in.Products))
		seen := make(map[string]struct{}, len(in.Products))
		for _, p := range in.Products {
			res, err := uc.syncItem(ctx, tx, table, p, seen)
			if err != nil {
				return err
			}
			results = append(results, res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary := dto.SyncSummary{Total: len(results)}
	for _, r := range results {
		if r.Status == dto.ItemStatusSuccess {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}
	return &dto.SyncStockResponse{
		Message: "Proceso de actualización de stock completado",
		Table:   table,
		Results: results,
		Summary: summary,
	}, nil
}

// syncItem procesa un producto dentro de su propio savepoint. Solo devuelve error cuando
// falla el mecanismo transaccional; el resto queda en el resultado del ítem.
func (uc *StockUseCase) syncItem(
	ctx context.Context,
	tx repository.Tx,
	table string,
	p dto.SyncStockItem,
	seen map[string]struct{},
) (dto.SyncItemResult, error) {
	res := dto.SyncItemResult{Name: p.Name, Status: dto.ItemStatusError}

	key := inventory.NormalizeName(p.Name)
	if key == "" {
		res.Message = "Se requiere el nombre del producto"
		return res, nil
	}
	if _, dup := seen[key]; dup {
		res.Message = "Producto duplicado en la solicitud"
		return res, nil
	}
	if p.Quantity <= 0 {
		res.Message = "La cantidad debe ser mayor a cero"
		return res, nil
	}
	// Solo una entrada válida reserva el nombre; una cantidad inválida no bloquea a la siguiente.
	seen[key] = struct{}{}

	var (
		found   *entity.PharmacyStock
		updated int
	)
	err := tx.Savepoint(ctx, func(sp repository.Tx) error {
		f, err := sp.PharmacyStock().FindByName(ctx, table, p.Name)
		if err != nil {
			return err
		}
		if f == nil {
			return domain.NotFound("Producto no encontrado en el inventario")
		}
		n, err := sp.PharmacyStock().AddStock(ctx, table, f.GenericName, p.Quantity)
		if err != nil {
			return err
		}
		found, updated = f, n
		return nil
	})
	switch {
	case err == nil:
		prev := found.Stock
		res.Status = dto.ItemStatusSuccess
		res.PreviousStock = &prev
		res.UpdatedStock = &updated
		return res, nil
	case errors.Is(err, domain.ErrTransactionFailed):
		return res, err
	case errors.Is(err, domain.ErrNotFound):
		res.Message = domain.Message(err)
		return res, nil
	default:
		uc.log.Warn().Err(err).Str("tabla", table).Str("producto", p.Name).Msg("actualizar-stock: error en ítem")
		res.Message = "Error al actualizar el stock: " + err.Error()
		return res, nil
	}
}
