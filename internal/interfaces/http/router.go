package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/application/policy"
	"github.com/jhoicas/Almacen-api/internal/application/purchase"
	"github.com/jhoicas/Almacen-api/internal/application/registry"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppendUC    *ledger.AppendMovementUseCase
	QueryUC     *ledger.QueryUseCase
	PurchaseUC  *purchase.PurchaseOrderUseCase
	PolicyUC    *policy.PolicyUseCase
	UnitUC      *registry.UnitUseCase
	CategoryUC  *registry.CategoryUseCase
	MaterialUC  *registry.MaterialUseCase
	SupplierUC  *registry.SupplierUseCase
	ProjectUC   *registry.ProjectUseCase
	WarehouseUC *registry.WarehouseUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Libro de movimientos
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.AppendUC, deps.QueryUC)
	movements.Post("/", movementHandler.Register)
	movements.Post("/transfer", movementHandler.Transfer)
	movements.Get("/", movementHandler.List)

	// Saldos derivados
	balances := api.Group("/balances")
	balanceHandler := NewBalanceHandler(deps.QueryUC)
	balances.Get("/", balanceHandler.Get)
	balances.Post("/recompute", balanceHandler.Recompute)

	// Órdenes de compra
	orders := api.Group("/purchase-orders")
	poHandler := NewPurchaseOrderHandler(deps.PurchaseUC)
	orders.Post("/", poHandler.Create)
	orders.Get("/", poHandler.List)
	orders.Get("/:id", poHandler.GetByID)
	orders.Delete("/:id", poHandler.Delete)
	orders.Post("/:id/items", poHandler.AddItem)
	orders.Post("/:id/place", poHandler.Place)
	orders.Post("/:id/cancel", poHandler.Cancel)

	// Políticas de mínimos
	policyHandler := NewPolicyHandler(deps.PolicyUC)
	policies := api.Group("/warehouse-policies")
	policies.Put("/", policyHandler.Upsert)
	policies.Post("/", policyHandler.Upsert)
	policies.Get("/", policyHandler.List)
	api.Get("/policy-breaches", policyHandler.Breaches)

	// Catálogo de referencia
	catalogHandler := NewCatalogHandler(deps.UnitUC, deps.CategoryUC, deps.MaterialUC)
	units := api.Group("/units")
	units.Post("/", catalogHandler.CreateUnit)
	units.Get("/", catalogHandler.ListUnits)
	categories := api.Group("/categories")
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/", catalogHandler.ListCategories)
	categories.Put("/:id/parent", catalogHandler.UpdateCategoryParent)
	categories.Delete("/:id", catalogHandler.DeleteCategory)
	materials := api.Group("/materials")
	materials.Post("/", catalogHandler.CreateMaterial)
	materials.Get("/", catalogHandler.ListMaterials)
	materials.Get("/:id", catalogHandler.GetMaterial)

	// Proveedores
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Delete("/:id", supplierHandler.Delete)
	suppliers.Post("/:id/materials", supplierHandler.AddMaterial)
	suppliers.Get("/:id/materials", supplierHandler.ListMaterials)
	suppliers.Post("/:id/prices", supplierHandler.AddPrice)
	suppliers.Get("/:id/prices", supplierHandler.ListPrices)

	// Proyectos y bodegas
	warehouseHandler := NewWarehouseHandler(deps.ProjectUC, deps.WarehouseUC)
	projects := api.Group("/projects")
	projects.Post("/", warehouseHandler.CreateProject)
	projects.Get("/", warehouseHandler.ListProjects)
	warehouses := api.Group("/warehouses")
	warehouses.Post("/", warehouseHandler.CreateWarehouse)
	warehouses.Get("/", warehouseHandler.ListWarehouses)
	warehouses.Get("/:id", warehouseHandler.GetWarehouse)
}
