package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para movimientos de stock.
// Las lecturas resuelven ProductName vía JOIN; List ordena por fecha descendente.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	Update(movement *entity.Movement) error
	Delete(id string) error
	List() ([]*entity.Movement, error)
}
