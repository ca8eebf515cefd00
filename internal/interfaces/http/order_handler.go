package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/orders"
)

// OrderHandler transiciones de pedidos desde bodega y farmacias.
type OrderHandler struct {
	uc *orders.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Cancel godoc
// @Summary      Cancelar pedido
// @Description  Cancela un pedido pendiente o confirmado y agrega "Cancelado por <origen>: <motivo>" a las notas.
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CancelOrderRequest  true  "pedido_id, motivo"
// @Success      200   {object}  dto.OrderTransitionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/bodega/cancelar-pedido [post]
// @Router       /api/v1/farmacias/cancelar-pedido [post]
func (h *OrderHandler) Cancel(origin string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.CancelOrderRequest
		if ok, err := parseAndValidate(c, &in); !ok {
			return err
		}
		out, err := h.uc.Cancel(c.Context(), origin, in)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
}

// Confirm godoc
// @Summary      Confirmar pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.OrderIDRequest  true  "pedido_id"
// @Success      200   {object}  dto.OrderTransitionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/bodega/confirmar-pedido [post]
func (h *OrderHandler) Confirm(c *fiber.Ctx) error {
	var in dto.OrderIDRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Confirm(c.Context(), in.OrderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Marcar pedido como completado
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.OrderIDRequest  true  "pedido_id"
// @Success      200   {object}  dto.OrderTransitionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/bodega/marcar-pedido-completado [post]
func (h *OrderHandler) Complete(c *fiber.Ctx) error {
	var in dto.OrderIDRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Complete(c.Context(), in.OrderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/pedidos/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: "ID de pedido inválido"})
	}
	out, err := h.uc.GetByID(c.Context(), int64(id))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
