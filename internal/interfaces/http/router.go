package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/ledger"
	"github.com/stockflow/stockflow-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger     *ledger.UseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	KanbanUC   *usecase.KanbanUseCase
	ReportUC   *usecase.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Movimientos de stock (el núcleo: cada escritura ajusta el stock)
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.Ledger)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Create)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)

	// Productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categorías
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Tablero kanban
	kanban := api.Group("/kanban")
	kanbanHandler := NewKanbanHandler(deps.KanbanUC)
	kanban.Get("/", kanbanHandler.List)
	kanban.Post("/", kanbanHandler.Create)
	kanban.Put("/:id", kanbanHandler.Update)
	kanban.Delete("/:id", kanbanHandler.Delete)

	// Resumen para el panel
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/summary", reportHandler.StockSummary)
}
