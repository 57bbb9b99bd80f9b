package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementKindEntry = "ENTRY" // entrada: suma al stock del producto
	MovementKindExit  = "EXIT"  // salida: resta del stock del producto
)

// ValidMovementKind indica si kind es un tipo de movimiento conocido.
func ValidMovementKind(kind string) bool {
	return kind == MovementKindEntry || kind == MovementKindExit
}

// Movement representa un movimiento de stock (entrada o salida) sobre un producto.
// Editable: kind, quantity, product y note pueden cambiar vía PUT; cada cambio
// dispara un recálculo compensatorio del stock afectado. Date se conserva.
type Movement struct {
	ID          string
	Kind        string
	Quantity    int // siempre positivo; el signo lo da Kind
	ProductID   string
	ProductName string // resuelto vía JOIN en lecturas; no se persiste
	Note        string
	Date        time.Time
}
