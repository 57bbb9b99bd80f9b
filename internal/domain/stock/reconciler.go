// Package stock contiene la aritmética de conciliación de stock: dado el stock
// actual de un producto y un movimiento (ENTRY/EXIT), calcula el nuevo stock
// garantizando que nunca quede negativo.
//
// Invariante: product.Quantity == inicial + Σ ENTRY − Σ EXIT sobre los
// movimientos vivos del producto. Las funciones son puras; la atomicidad de
// aplicar el resultado junto con el movimiento es responsabilidad del caso de
// uso (TxRunner).
package stock

import (
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// Apply calcula el stock resultante de registrar un movimiento nuevo.
// ENTRY suma, EXIT resta. Falla con ErrInvalidQuantity si qty <= 0 y con
// ErrInsufficientStock si una salida excede el stock disponible.
func Apply(onHand int, kind string, qty int) (int, error) {
	if qty <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	switch kind {
	case entity.MovementKindEntry:
		return onHand + qty, nil
	case entity.MovementKindExit:
		if qty > onHand {
			return 0, domain.ErrInsufficientStock
		}
		return onHand - qty, nil
	default:
		return 0, domain.ErrInvalidInput
	}
}

// Revert calcula el stock resultante de deshacer un movimiento ya registrado
// (por borrado, o como fase 1 de una edición). Deshacer un ENTRY resta; si el
// resultado fuera negativo falla con ErrInvalidReversal y el stock no cambia.
// Deshacer un EXIT siempre suma y nunca falla.
func Revert(onHand int, kind string, qty int) (int, error) {
	switch kind {
	case entity.MovementKindEntry:
		if qty > onHand {
			return 0, domain.ErrInvalidReversal
		}
		return onHand - qty, nil
	case entity.MovementKindExit:
		return onHand + qty, nil
	default:
		return 0, domain.ErrInvalidInput
	}
}
