package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/agro-inventario-api/internal/application/inventory"
	"github.com/jhoicas/agro-inventario-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger *inventory.StockLedgerUseCase
	Log    *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	inventoryHandler := NewInventoryHandler(deps.Ledger, deps.Log)
	inv := api.Group("/inventory")

	// Las rutas de stock van antes de /:id para no capturarlas como id.
	inv.Get("/stock", inventoryHandler.ListStock)
	inv.Post("/stock/reconcile", inventoryHandler.Reconcile)

	inv.Get("/", inventoryHandler.List)
	inv.Post("/", inventoryHandler.Create)
	inv.Get("/:id", inventoryHandler.Get)
	inv.Put("/:id", inventoryHandler.Update)
	inv.Delete("/:id", inventoryHandler.Delete)
}
