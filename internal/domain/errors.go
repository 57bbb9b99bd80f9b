package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Todos son recuperables: los handlers los traducen a respuestas 4xx.
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser mayor que cero")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrCategoryNotFound  = errors.New("categoría no encontrada")
	ErrMovementNotFound  = errors.New("movimiento no encontrado")
	ErrCardNotFound      = errors.New("tarjeta no encontrada")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidReversal   = errors.New("revertir el movimiento dejaría el stock en negativo")
	ErrProductInUse      = errors.New("el producto tiene movimientos asociados")
	ErrCategoryInUse     = errors.New("la categoría tiene productos asociados")
)
