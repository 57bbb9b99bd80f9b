package dto

import "time"

// CreateMovementRequest body para POST /api/movements.
type CreateMovementRequest struct {
	Kind      string `json:"kind" validate:"required,oneof=ENTRY EXIT"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Note      string `json:"note"`
}

// UpdateMovementRequest body para PUT /api/movements/:id.
// ProductID vacío mantiene el producto actual; Note nil no toca la observación.
type UpdateMovementRequest struct {
	Kind      string  `json:"kind" validate:"required,oneof=ENTRY EXIT"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	ProductID *string `json:"product_id" validate:"omitempty,uuid4"`
	Note      *string `json:"note"`
}

// MovementResponse salida de un movimiento con el nombre del producto resuelto.
type MovementResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Quantity    int       `json:"quantity"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Note        string    `json:"note,omitempty"`
	Date        time.Time `json:"date"`
}
