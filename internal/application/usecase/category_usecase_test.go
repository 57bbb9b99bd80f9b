package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/usecase"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/infrastructure/memory"
)

func newCategoryUC() (*usecase.CategoryUseCase, *memory.Store) {
	store := memory.NewStore()
	return usecase.NewCategoryUseCase(store.CategoryRepo()), store
}

func TestCategoria_CicloCompleto(t *testing.T) {
	uc, _ := newCategoryUC()

	created, err := uc.Create(dto.CreateCategoryRequest{
		Name: "Insumos", Description: "Materia prima", Type: "Insumo", Unit: "kg",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Insumos", got.Name)
	assert.Equal(t, "kg", got.Unit)

	name := "Materias primas"
	updated, err := uc.Update(created.ID, dto.UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Materias primas", updated.Name)
	assert.Equal(t, "Insumo", updated.Type, "los campos no enviados se conservan")

	require.NoError(t, uc.Delete(created.ID))
	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCategoria_ListaOrdenadaPorNombre(t *testing.T) {
	uc, _ := newCategoryUC()

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Terminados"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateCategoryRequest{Name: "Insumos"})
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Insumos", list[0].Name)
	assert.Equal(t, "Terminados", list[1].Name)
}

func TestCategoria_BorrarConProductos_Falla(t *testing.T) {
	uc, store := newCategoryUC()

	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Insumos"})
	require.NoError(t, err)
	productID := uuid.New().String()
	store.Products[productID] = &entity.Product{
		ID: productID, Name: "Harina", CategoryID: created.ID,
	}

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryInUse)
}

func TestCategoria_Inexistente(t *testing.T) {
	uc, _ := newCategoryUC()

	_, err := uc.GetByID(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	err = uc.Delete(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
