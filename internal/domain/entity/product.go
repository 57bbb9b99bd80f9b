package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Quantity es el stock actual: se fija al crear el producto y después solo lo
// modifica el motor de stock a través de movimientos (nunca un PUT directo).
type Product struct {
	ID           string
	Name         string
	Description  string
	Price        *decimal.Decimal // precio de venta, opcional
	Quantity     int              // stock actual, nunca negativo
	CategoryID   string
	CategoryName string // resuelto vía JOIN en lecturas; no se persiste
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
