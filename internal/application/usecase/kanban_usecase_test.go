package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/usecase"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/infrastructure/memory"
)

func newKanbanUC() (*usecase.KanbanUseCase, *memory.Store) {
	store := memory.NewStore()
	return usecase.NewKanbanUseCase(store.KanbanCardRepo()), store
}

func TestKanban_CicloCompleto(t *testing.T) {
	uc, _ := newKanbanUC()

	created, err := uc.Create(dto.CreateKanbanCardRequest{
		Title: "Inventario físico", Description: "Conteo mensual", Type: "tarea", Status: "todo",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "todo", created.Status)

	// Mover de columna: PUT solo con status
	status := "doing"
	updated, err := uc.Update(created.ID, dto.UpdateKanbanCardRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "doing", updated.Status)
	assert.Equal(t, "Inventario físico", updated.Title, "el resto de la tarjeta no cambia")

	require.NoError(t, uc.Delete(created.ID))
	_, err = uc.Update(created.ID, dto.UpdateKanbanCardRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}

func TestKanban_ListaPorActividadReciente(t *testing.T) {
	uc, store := newKanbanUC()

	first, err := uc.Create(dto.CreateKanbanCardRequest{
		Title: "Vieja", Description: "d", Type: "tarea", Status: "todo",
	})
	require.NoError(t, err)
	second, err := uc.Create(dto.CreateKanbanCardRequest{
		Title: "Nueva", Description: "d", Type: "tarea", Status: "todo",
	})
	require.NoError(t, err)

	// Forzar orden estable entre tarjetas creadas en el mismo instante
	store.Cards[first.ID].UpdatedAt = time.Now().Add(-time.Hour)
	store.Cards[second.ID].UpdatedAt = time.Now()

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Nueva", list[0].Title)
}

func TestKanban_Inexistente_Falla(t *testing.T) {
	uc, _ := newKanbanUC()
	err := uc.Delete(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}
