package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/pkg/validator"
)

// Códigos de error expuestos en dto.ErrorResponse.Code.
const (
	CodeInvalidBody       = "INVALID_BODY"
	CodeValidation        = "VALIDATION"
	CodeNotFound          = "NOT_FOUND"
	CodeStateConflict     = "STATE_CONFLICT"
	CodeTransactionFailed = "TRANSACTION_FAILED"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeInternal          = "INTERNAL"
)

// statusFor traduce el tipo de error de dominio a status HTTP y código.
// Un conflicto de estado del pedido responde 400, igual que los errores de entrada.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, CodeValidation
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusBadRequest, CodeStateConflict
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, CodeUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, CodeForbidden
	case errors.Is(err, domain.ErrTransactionFailed):
		return fiber.StatusInternalServerError, CodeTransactionFailed
	default:
		return fiber.StatusInternalServerError, CodeInternal
	}
}

// writeError responde con dto.ErrorResponse. Los 5xx se registran con la causa y
// al cliente solo le llega el mensaje de dominio.
func writeError(c *fiber.Ctx, err error) error {
	status, code := statusFor(err)
	msg := domain.Message(err)
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error interno")
		if code == CodeInternal {
			msg = "Error interno del servidor"
		}
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido"})
}

// parseAndValidate decodifica el body JSON y aplica los tags `validate` del DTO.
// Devuelve false si ya respondió con el error.
func parseAndValidate(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, invalidBody(c)
	}
	if errs := validator.ValidateStruct(out); len(errs) > 0 {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    CodeValidation,
			Message: validator.Message(errs),
		})
	}
	return true, nil
}
