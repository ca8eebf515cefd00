package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/inventory"
)

// InventoryHandler consultas del inventario de bodega.
type InventoryHandler struct {
	uc *inventory.LowStockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.LowStockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Inventario de bodega
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ItemResponse
// @Router       /api/v1/inventario-bodega [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListItems(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Medicamentos con bajo stock
// @Description  Stock estrictamente menor al umbral (default configurable, 50), de menor a mayor.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        umbral  query     int  false  "umbral de stock"
// @Success      200     {array}   dto.ItemResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/v1/inventario-bodega/bajo-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	threshold, ok := h.threshold(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: "umbral inválido"})
	}
	out, err := h.uc.GetLowStock(c.Context(), threshold)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// LowStockPDF godoc
// @Summary      Reporte PDF de bajo stock
// @Tags         inventario
// @Security     Bearer
// @Produce      application/pdf
// @Param        umbral  query     int  false  "umbral de stock"
// @Success      200     {file}    binary
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/v1/inventario-bodega/bajo-stock/pdf [get]
func (h *InventoryHandler) LowStockPDF(c *fiber.Ctx) error {
	threshold, ok := h.threshold(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: "umbral inválido"})
	}
	pdf, err := h.uc.LowStockReportPDF(c.Context(), threshold)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="bajo-stock-%d.pdf"`, threshold))
	return c.Send(pdf)
}

// threshold lee ?umbral; ausente = umbral configurado.
func (h *InventoryHandler) threshold(c *fiber.Ctx) (int, bool) {
	raw := c.Query("umbral")
	if raw == "" {
		return h.uc.DefaultThreshold(), true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
