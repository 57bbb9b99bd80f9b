package http_test

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/infrastructure/memory"
)

func seedStoreCategory(store *memory.Store, name string) *entity.Category {
	c := &entity.Category{ID: uuid.New().String(), Name: name}
	store.Categories[c.ID] = c
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/products
// ──────────────────────────────────────────────────────────────────────────────

func TestPostProduct_CreaConStockInicial(t *testing.T) {
	app, store := newTestApp(t)
	cat := seedStoreCategory(store, "Insumos")

	resp := doJSON(t, app, fiber.MethodPost, "/api/products", dto.CreateProductRequest{
		Name: "Harina", Description: "Bolsa 25kg", Quantity: 40, CategoryID: cat.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody[dto.ProductResponse](t, resp)
	assert.Equal(t, "Harina", body.Name)
	assert.Equal(t, 40, body.Quantity)
	assert.Equal(t, "Insumos", body.CategoryName)
	assert.Equal(t, 40, store.Products[body.ID].Quantity)
}

func TestPostProduct_CategoriaInexistente_400(t *testing.T) {
	app, store := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/products", dto.CreateProductRequest{
		Name: "Harina", Quantity: 10, CategoryID: uuid.New().String(),
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "CATEGORY_NOT_FOUND", body.Code)
	assert.Empty(t, store.Products)
}

func TestPostProduct_SinNombre_400(t *testing.T) {
	app, store := newTestApp(t)
	cat := seedStoreCategory(store, "Insumos")

	resp := doJSON(t, app, fiber.MethodPost, "/api/products", dto.CreateProductRequest{
		Quantity: 10, CategoryID: cat.ID,
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// PUT /api/products/:id
// ──────────────────────────────────────────────────────────────────────────────

func TestPutProduct_NoModificaStock(t *testing.T) {
	app, store := newTestApp(t)
	cat := seedStoreCategory(store, "Insumos")
	p := &entity.Product{ID: uuid.New().String(), Name: "Harina", Quantity: 40, CategoryID: cat.ID}
	store.Products[p.ID] = p

	// "quantity" en el body se ignora: el stock solo cambia vía movimientos
	resp := doJSON(t, app, fiber.MethodPut, "/api/products/"+p.ID, fiber.Map{
		"name": "Harina integral", "quantity": 999,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody[dto.ProductResponse](t, resp)
	assert.Equal(t, "Harina integral", body.Name)
	assert.Equal(t, 40, body.Quantity)
	assert.Equal(t, 40, store.Products[p.ID].Quantity)
}

func TestPutProduct_Inexistente_404(t *testing.T) {
	app, _ := newTestApp(t)
	name := "Harina"
	resp := doJSON(t, app, fiber.MethodPut, "/api/products/"+uuid.New().String(), dto.UpdateProductRequest{
		Name: &name,
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "PRODUCT_NOT_FOUND", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// DELETE /api/products/:id
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteProduct_ConMovimientos_409(t *testing.T) {
	app, store := newTestApp(t)
	p := seedStoreProduct(store, "Harina", 50)
	seedStoreMovement(store, p.ID, entity.MovementKindEntry, 10, time.Now())

	resp := doJSON(t, app, fiber.MethodDelete, "/api/products/"+p.ID, nil)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "PRODUCT_IN_USE", body.Code)
	assert.Len(t, store.Products, 1)
}

func TestDeleteProduct_SinMovimientos_204(t *testing.T) {
	app, store := newTestApp(t)
	p := seedStoreProduct(store, "Harina", 50)

	resp := doJSON(t, app, fiber.MethodDelete, "/api/products/"+p.ID, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Empty(t, store.Products)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/products
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProducts_OrdenPorNombre(t *testing.T) {
	app, store := newTestApp(t)
	seedStoreProduct(store, "Harina", 10)
	seedStoreProduct(store, "Azúcar", 5)

	resp := doJSON(t, app, fiber.MethodGet, "/api/products/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	list := decodeBody[[]dto.ProductResponse](t, resp)
	require.Len(t, list, 2)
	assert.Equal(t, "Azúcar", list[0].Name)
	assert.Equal(t, "Harina", list[1].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/reports/summary
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary_CuentaEntidades(t *testing.T) {
	app, store := newTestApp(t)
	seedStoreCategory(store, "Insumos")
	p := seedStoreProduct(store, "Harina", 10)
	seedStoreProduct(store, "Azúcar", 0)
	seedStoreMovement(store, p.ID, entity.MovementKindEntry, 10, time.Now())
	seedStoreMovement(store, p.ID, entity.MovementKindExit, 5, time.Now())

	resp := doJSON(t, app, fiber.MethodGet, "/api/reports/summary", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody[dto.StockSummaryResponse](t, resp)
	assert.Equal(t, 2, body.TotalProducts)
	assert.Equal(t, 1, body.TotalCategories)
	assert.Equal(t, 2, body.TotalMovements)
	assert.Equal(t, 1, body.EntryCount)
	assert.Equal(t, 1, body.ExitCount)
	assert.Equal(t, 1, body.ZeroStockCount)
}
