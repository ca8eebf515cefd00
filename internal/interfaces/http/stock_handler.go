package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/inventory"
)

// StockHandler reabastecimiento de bodega y envío de stock a farmacias.
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Replenish godoc
// @Summary      Reabastecer medicamento
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "ID del medicamento"
// @Param        body  body      dto.ReplenishRequest  true  "cantidad"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/medicamentos-bodega/{id}/reabastecer [put]
func (h *StockHandler) Replenish(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: "ID de medicamento inválido"})
	}
	var in dto.ReplenishRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	if err := h.uc.Replenish(c.Context(), int64(id), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Medicamento reabastecido correctamente"})
}

// ReplenishBatch godoc
// @Summary      Reabastecer varios medicamentos
// @Description  Las entradas con ID inválido, cantidad no positiva o medicamento inexistente se omiten y se reportan.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      []dto.ReplenishBatchEntry  true  "[{id, cantidad}]"
// @Success      200   {object}  dto.ReplenishBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/medicamentos-bodega/reabastecer-multiple [put]
func (h *StockHandler) ReplenishBatch(c *fiber.Ctx) error {
	var entries []dto.ReplenishBatchEntry
	if err := c.BodyParser(&entries); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ReplenishBatch(c.Context(), entries)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SyncPharmacy godoc
// @Summary      Actualizar stock de una farmacia
// @Description  Suma cantidades al inventario de la farmacia indicada. Responde un resultado por producto.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SyncStockRequest  true  "tabla_farmacia, productos"
// @Success      200   {object}  dto.SyncStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/bodega/actualizar-stock [post]
func (h *StockHandler) SyncPharmacy(c *fiber.Ctx) error {
	var in dto.SyncStockRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.SyncStockAcrossTable(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
