package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Apply: registrar un movimiento nuevo
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_EntradaSumaStock(t *testing.T) {
	got, err := stock.Apply(100, entity.MovementKindEntry, 30)
	require.NoError(t, err)
	assert.Equal(t, 130, got)
}

func TestApply_SalidaRestaStock(t *testing.T) {
	got, err := stock.Apply(100, entity.MovementKindExit, 30)
	require.NoError(t, err)
	assert.Equal(t, 70, got)
}

func TestApply_SalidaMayorQueStock_Falla(t *testing.T) {
	_, err := stock.Apply(20, entity.MovementKindExit, 30)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestApply_SalidaExacta_DejaCero(t *testing.T) {
	// Caso límite: sacar exactamente el stock disponible es válido.
	got, err := stock.Apply(30, entity.MovementKindExit, 30)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestApply_CantidadCeroONegativa_Falla(t *testing.T) {
	_, err := stock.Apply(100, entity.MovementKindEntry, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = stock.Apply(100, entity.MovementKindExit, -5)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestApply_TipoDesconocido_Falla(t *testing.T) {
	_, err := stock.Apply(100, "TRANSFER", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Revert: deshacer un movimiento registrado (borrado o fase 1 de edición)
// ──────────────────────────────────────────────────────────────────────────────

func TestRevert_EntradaRestaStock(t *testing.T) {
	// Producto en 70 tras una entrada de 50: deshacerla deja 20.
	got, err := stock.Revert(70, entity.MovementKindEntry, 50)
	require.NoError(t, err)
	assert.Equal(t, 20, got)
}

func TestRevert_EntradaQueDejaNegativo_Falla(t *testing.T) {
	// El stock bajó a 30 por otras salidas: deshacer la entrada de 50 dejaría -20.
	_, err := stock.Revert(30, entity.MovementKindEntry, 50)
	assert.ErrorIs(t, err, domain.ErrInvalidReversal)
}

func TestRevert_SalidaSiempreSuma(t *testing.T) {
	got, err := stock.Revert(0, entity.MovementKindExit, 25)
	require.NoError(t, err)
	assert.Equal(t, 25, got)
}

func TestRevert_EntradaExacta_DejaCero(t *testing.T) {
	got, err := stock.Revert(50, entity.MovementKindEntry, 50)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

// Edición como Revert + Apply: mover un ENTRY 10 del producto A a un EXIT 5
// sobre el producto B ajusta ambos stocks de forma independiente.
func TestRevertMasApply_EdicionEntreProductos(t *testing.T) {
	qtyA, err := stock.Revert(110, entity.MovementKindEntry, 10)
	require.NoError(t, err)
	assert.Equal(t, 100, qtyA)

	qtyB, err := stock.Apply(40, entity.MovementKindExit, 5)
	require.NoError(t, err)
	assert.Equal(t, 35, qtyB)
}

// Edición sobre el mismo producto: el Apply se evalúa contra el stock ya
// revertido, no contra el original.
func TestRevertMasApply_MismoProducto(t *testing.T) {
	reverted, err := stock.Revert(70, entity.MovementKindExit, 30)
	require.NoError(t, err)
	assert.Equal(t, 100, reverted)

	// La nueva salida de 90 cabe en 100 aunque no cabía en 70.
	final, err := stock.Apply(reverted, entity.MovementKindExit, 90)
	require.NoError(t, err)
	assert.Equal(t, 10, final)
}
