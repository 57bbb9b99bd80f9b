package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y solo tiene sentido dentro
// de una transacción del TxRunner: el motor de stock relee la cantidad con la
// fila bloqueada antes de calcular el delta.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(productID string, quantity int) error
	List() ([]*entity.Product, error)
	Delete(id string) error
}
