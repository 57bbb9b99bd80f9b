package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// KanbanCardRepository define el puerto de persistencia para el tablero kanban.
// List ordena por updated_at descendente (las tarjetas tocadas recientemente primero).
type KanbanCardRepository interface {
	Create(card *entity.KanbanCard) error
	GetByID(id string) (*entity.KanbanCard, error)
	Update(card *entity.KanbanCard) error
	Delete(id string) error
	List() ([]*entity.KanbanCard, error)
}
