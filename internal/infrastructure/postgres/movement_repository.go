package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, kind, quantity, product_id, note, date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	note := (*string)(nil)
	if movement.Note != "" {
		note = &movement.Note
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Kind, movement.Quantity, movement.ProductID, note, movement.Date,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID con el nombre del producto resuelto.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `
		SELECT m.id, m.kind, m.quantity, m.product_id, p.name, m.note, m.date
		FROM movements m
		JOIN products p ON p.id = m.product_id
		WHERE m.id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// Update reescribe kind, quantity, producto y nota. La fecha original se conserva.
func (r *MovementRepo) Update(movement *entity.Movement) error {
	query := `
		UPDATE movements SET kind = $2, quantity = $3, product_id = $4, note = $5
		WHERE id = $1`
	note := (*string)(nil)
	if movement.Note != "" {
		note = &movement.Note
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Kind, movement.Quantity, movement.ProductID, note,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	return nil
}

// Delete elimina un movimiento por ID.
func (r *MovementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

// List devuelve todos los movimientos ordenados por fecha descendente.
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	query := `
		SELECT m.id, m.kind, m.quantity, m.product_id, p.name, m.note, m.date
		FROM movements m
		JOIN products p ON p.id = m.product_id
		ORDER BY m.date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var note *string
	if err := row.Scan(&m.ID, &m.Kind, &m.Quantity, &m.ProductID, &m.ProductName, &note, &m.Date); err != nil {
		return nil, err
	}
	if note != nil {
		m.Note = *note
	}
	return &m, nil
}
