package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

var _ repository.KanbanCardRepository = (*KanbanCardRepo)(nil)

// KanbanCardRepo implementación del puerto KanbanCardRepository sobre PostgreSQL.
type KanbanCardRepo struct {
	q Querier
}

// NewKanbanCardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewKanbanCardRepository(q Querier) *KanbanCardRepo {
	return &KanbanCardRepo{q: q}
}

// Create persiste una tarjeta nueva.
func (r *KanbanCardRepo) Create(card *entity.KanbanCard) error {
	query := `
		INSERT INTO kanban_cards (id, title, description, type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		card.ID, card.Title, card.Description, card.Type, card.Status,
		card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert kanban card: %w", err)
	}
	return nil
}

// GetByID obtiene una tarjeta por ID.
func (r *KanbanCardRepo) GetByID(id string) (*entity.KanbanCard, error) {
	query := `
		SELECT id, title, description, type, status, created_at, updated_at
		FROM kanban_cards WHERE id = $1`
	var c entity.KanbanCard
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Title, &c.Description, &c.Type, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kanban card: %w", err)
	}
	return &c, nil
}

// Update actualiza una tarjeta existente.
func (r *KanbanCardRepo) Update(card *entity.KanbanCard) error {
	query := `
		UPDATE kanban_cards SET title = $2, description = $3, type = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		card.ID, card.Title, card.Description, card.Type, card.Status, card.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update kanban card: %w", err)
	}
	return nil
}

// Delete elimina una tarjeta por ID.
func (r *KanbanCardRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM kanban_cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete kanban card: %w", err)
	}
	return nil
}

// List lista las tarjetas, las tocadas más recientemente primero.
func (r *KanbanCardRepo) List() ([]*entity.KanbanCard, error) {
	query := `
		SELECT id, title, description, type, status, created_at, updated_at
		FROM kanban_cards ORDER BY updated_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list kanban cards: %w", err)
	}
	defer rows.Close()
	var list []*entity.KanbanCard
	for rows.Next() {
		var c entity.KanbanCard
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Type, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan kanban card: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
