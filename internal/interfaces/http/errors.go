package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
)

// writeError traduce un error de dominio a una respuesta HTTP con código
// legible por máquina. Los errores de stock (insuficiente, reversión inválida)
// responden 400 como la API original; los "en uso" por FK responden 409.
// Cualquier error no reconocido es un 500 genérico y se loguea.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return respond(c, fiber.StatusBadRequest, "INVALID_QUANTITY", err)
	case errors.Is(err, domain.ErrInvalidInput):
		return respond(c, fiber.StatusBadRequest, "VALIDATION", err)
	case errors.Is(err, domain.ErrInsufficientStock):
		return respond(c, fiber.StatusBadRequest, "INSUFFICIENT_STOCK", err)
	case errors.Is(err, domain.ErrInvalidReversal):
		return respond(c, fiber.StatusBadRequest, "INVALID_REVERSAL", err)
	case errors.Is(err, domain.ErrProductNotFound):
		return respond(c, fiber.StatusNotFound, "PRODUCT_NOT_FOUND", err)
	case errors.Is(err, domain.ErrMovementNotFound):
		return respond(c, fiber.StatusNotFound, "MOVEMENT_NOT_FOUND", err)
	case errors.Is(err, domain.ErrCategoryNotFound):
		return respond(c, fiber.StatusNotFound, "CATEGORY_NOT_FOUND", err)
	case errors.Is(err, domain.ErrCardNotFound):
		return respond(c, fiber.StatusNotFound, "CARD_NOT_FOUND", err)
	case errors.Is(err, domain.ErrProductInUse):
		return respond(c, fiber.StatusConflict, "PRODUCT_IN_USE", err)
	case errors.Is(err, domain.ErrCategoryInUse):
		return respond(c, fiber.StatusConflict, "CATEGORY_IN_USE", err)
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error interno",
		})
	}
}

func respond(c *fiber.Ctx, status int, code string, err error) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
