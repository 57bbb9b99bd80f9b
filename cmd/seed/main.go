// Seeder de datos de ejemplo: categorías, productos y tarjetas kanban para
// desarrollo local. Los movimientos no se siembran directamente: se registran
// vía el libro de movimientos para que el stock quede consistente.
package main

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/ledger"
	"github.com/stockflow/stockflow-api/internal/application/usecase"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/infrastructure/postgres"
	"github.com/stockflow/stockflow-api/pkg/config"
	"github.com/stockflow/stockflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	kanbanRepo := postgres.NewKanbanCardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	kanbanUC := usecase.NewKanbanUseCase(kanbanRepo)
	ledgerUC := ledger.NewUseCase(txRunner, movementRepo, productRepo)

	insumos, err := categoryUC.Create(dto.CreateCategoryRequest{
		Name: "Insumos", Description: "Materia prima", Type: "Insumo", Unit: "kg",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear categoría")
	}
	terminados, err := categoryUC.Create(dto.CreateCategoryRequest{
		Name: "Terminados", Description: "Producto terminado", Type: "Producto", Unit: "un",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear categoría")
	}

	price := func(v string) *decimal.Decimal {
		d, _ := decimal.NewFromString(v)
		return &d
	}

	harina, err := productUC.Create(dto.CreateProductRequest{
		Name: "Harina de trigo", Description: "Bolsa 25kg", Price: price("89.90"),
		Quantity: 100, CategoryID: insumos.ID,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear producto")
	}
	pan, err := productUC.Create(dto.CreateProductRequest{
		Name: "Pan artesanal", Description: "Unidad 500g", Price: price("4.50"),
		Quantity: 0, CategoryID: terminados.ID,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear producto")
	}

	movements := []dto.CreateMovementRequest{
		{Kind: entity.MovementKindExit, Quantity: 30, ProductID: harina.ID, Note: "producción semanal"},
		{Kind: entity.MovementKindEntry, Quantity: 60, ProductID: pan.ID, Note: "horneada del lunes"},
		{Kind: entity.MovementKindExit, Quantity: 45, ProductID: pan.ID, Note: "venta mostrador"},
	}
	for _, m := range movements {
		if _, err := ledgerUC.Create(ctx, m); err != nil {
			log.Fatal().Err(err).Str("product_id", m.ProductID).Msg("registrar movimiento")
		}
	}

	cards := []dto.CreateKanbanCardRequest{
		{Title: "Inventario físico", Description: "Conteo mensual de insumos", Type: "tarea", Status: "todo"},
		{Title: "Pedir harina", Description: "Stock por debajo de 50kg", Type: "compra", Status: "doing"},
	}
	for _, card := range cards {
		if _, err := kanbanUC.Create(card); err != nil {
			log.Fatal().Err(err).Msg("crear tarjeta kanban")
		}
	}

	log.Info().Msg("datos de ejemplo cargados")
}
