package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// KanbanUseCase casos de uso del tablero de tareas.
type KanbanUseCase struct {
	repo repository.KanbanCardRepository
}

// NewKanbanUseCase construye el caso de uso.
func NewKanbanUseCase(repo repository.KanbanCardRepository) *KanbanUseCase {
	return &KanbanUseCase{repo: repo}
}

// Create crea una tarjeta.
func (uc *KanbanUseCase) Create(in dto.CreateKanbanCardRequest) (*dto.KanbanCardResponse, error) {
	now := time.Now()
	card := &entity.KanbanCard{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(card); err != nil {
		return nil, err
	}
	return toKanbanCardResponse(card), nil
}

// Update actualiza una tarjeta; mover de columna es un Update solo con Status.
func (uc *KanbanUseCase) Update(id string, in dto.UpdateKanbanCardRequest) (*dto.KanbanCardResponse, error) {
	card, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, domain.ErrCardNotFound
	}
	if in.Title != nil {
		card.Title = *in.Title
	}
	if in.Description != nil {
		card.Description = *in.Description
	}
	if in.Type != nil {
		card.Type = *in.Type
	}
	if in.Status != nil {
		card.Status = *in.Status
	}
	card.UpdatedAt = time.Now()
	if err := uc.repo.Update(card); err != nil {
		return nil, err
	}
	return toKanbanCardResponse(card), nil
}

// List lista las tarjetas, las tocadas más recientemente primero.
func (uc *KanbanUseCase) List() ([]dto.KanbanCardResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.KanbanCardResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toKanbanCardResponse(c))
	}
	return items, nil
}

// Delete elimina una tarjeta por ID.
func (uc *KanbanUseCase) Delete(id string) error {
	card, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if card == nil {
		return domain.ErrCardNotFound
	}
	return uc.repo.Delete(id)
}

func toKanbanCardResponse(c *entity.KanbanCard) *dto.KanbanCardResponse {
	if c == nil {
		return nil
	}
	return &dto.KanbanCardResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Type:        c.Type,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
