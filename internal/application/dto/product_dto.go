package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Quantity es el stock inicial; después solo cambia vía movimientos.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    int              `json:"quantity" validate:"min=0"`
	CategoryID  string           `json:"category_id" validate:"required,uuid4"`
}

// UpdateProductRequest entrada para actualizar un producto.
// No incluye Quantity: el stock solo se modifica vía movimientos.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *string          `json:"category_id" validate:"omitempty,uuid4"`
}

// ProductResponse salida de un producto con el nombre de su categoría.
type ProductResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	Quantity     int              `json:"quantity"`
	CategoryID   string           `json:"category_id"`
	CategoryName string           `json:"category_name"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
