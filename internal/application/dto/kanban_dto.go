package dto

import "time"

// CreateKanbanCardRequest body para POST /api/kanban. Todos los campos son
// obligatorios (el tablero no renderiza tarjetas incompletas).
type CreateKanbanCardRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Status      string `json:"status" validate:"required"`
}

// UpdateKanbanCardRequest body para PUT /api/kanban/:id (campos opcionales;
// mover de columna es un PUT solo con status).
type UpdateKanbanCardRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Status      *string `json:"status"`
}

// KanbanCardResponse salida de una tarjeta.
type KanbanCardResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
