package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/ledger"
	"github.com/jhoicas/Bodega-api/pkg/validator"
)

// LedgerHandler caja de la bodega: movimientos y saldo.
type LedgerHandler struct {
	uc *ledger.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de caja
// @Tags         caja
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RecordMovementRequest  true  "descripcion, monto, tipo (ingreso|egreso)"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/transacciones-bodega [post]
func (h *LedgerHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.RecordMovement(c.Context(), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Transacción registrada correctamente"})
}

// GetBalance godoc
// @Summary      Saldo de la bodega
// @Tags         caja
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BalanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/saldo-bodega [get]
func (h *LedgerHandler) GetBalance(c *fiber.Ctx) error {
	out, err := h.uc.GetBalance(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Movimientos de caja
// @Description  Más recientes primero.
// @Tags         caja
// @Security     Bearer
// @Produce      json
// @Param        limit   query     int  false  "máximo 100 (default 20)"
// @Param        offset  query     int  false  "desplazamiento"
// @Success      200     {object}  dto.MovementListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/v1/movimientos-bodega [get]
func (h *LedgerHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: "parámetros de paginación inválidos"})
	}
	if errs := validator.ValidateStruct(&page); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: validator.Message(errs)})
	}
	out, err := h.uc.ListMovements(c.Context(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
