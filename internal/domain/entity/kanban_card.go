package entity

import "time"

// KanbanCard representa una tarjeta del tablero de tareas.
// Status y Type son texto libre controlado por el frontend (ej. "todo", "doing", "done").
type KanbanCard struct {
	ID          string
	Title       string
	Description string
	Type        string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
