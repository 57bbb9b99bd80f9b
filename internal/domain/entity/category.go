package entity

import "time"

// Category representa una categoría de productos.
// Type y Unit son texto libre (ej. "Insumo" / "kg") que el frontend usa para agrupar.
type Category struct {
	ID          string
	Name        string
	Description string
	Type        string
	Unit        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
