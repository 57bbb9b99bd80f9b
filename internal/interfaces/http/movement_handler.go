package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/ledger"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos de stock.
type MovementHandler struct {
	ledger *ledger.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(ledger *ledger.UseCase) *MovementHandler {
	return &MovementHandler{ledger: ledger}
}

// Create registra un movimiento y ajusta el stock del producto. 201 con el
// movimiento creado, 400 si la cantidad es inválida o no hay stock suficiente.
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// La cantidad tiene su propio código de error antes del validador genérico
	if in.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "la cantidad debe ser mayor que cero"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	resp, err := h.ledger.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update edita un movimiento recalculando el stock afectado (ambos productos
// si el movimiento cambia de producto).
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "la cantidad debe ser mayor que cero"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	resp, err := h.ledger.Update(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Delete borra un movimiento revirtiendo su efecto. 204 sin cuerpo; 400 si la
// reversión dejaría el stock en negativo.
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.ledger.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID devuelve un movimiento con el nombre del producto resuelto.
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.ledger.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// List devuelve todos los movimientos, los más recientes primero.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	list, err := h.ledger.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}
