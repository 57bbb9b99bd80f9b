package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/usecase"
)

// KanbanHandler maneja las peticiones HTTP del tablero de tareas.
type KanbanHandler struct {
	uc *usecase.KanbanUseCase
}

// NewKanbanHandler construye el handler.
func NewKanbanHandler(uc *usecase.KanbanUseCase) *KanbanHandler {
	return &KanbanHandler{uc: uc}
}

// Create crea una tarjeta; título, descripción, tipo y estado son obligatorios.
func (h *KanbanHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateKanbanCardRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update actualiza una tarjeta (mover de columna es un PUT solo con status).
func (h *KanbanHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateKanbanCardRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	resp, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// List devuelve las tarjetas, las tocadas más recientemente primero.
func (h *KanbanHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Delete elimina una tarjeta.
func (h *KanbanHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
