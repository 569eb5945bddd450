package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/application/policy"
	"github.com/jhoicas/Almacen-api/internal/application/purchase"
	"github.com/jhoicas/Almacen-api/internal/application/registry"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Almacen-api/internal/interfaces/http"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("forbid_negative", cfg.Stock.ForbidNegative).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	movementRepo := postgres.NewMovementRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	poRepo := postgres.NewPurchaseOrderRepository(pool)
	policyRepo := postgres.NewPolicyRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	appendUC := ledger.NewAppendMovementUseCase(
		txRunner, materialRepo, warehouseRepo, supplierRepo, projectRepo, poRepo, movementRepo,
		cfg.Stock.ForbidNegative, log,
	)
	queryUC := ledger.NewQueryUseCase(movementRepo, stockRepo)
	purchaseUC := purchase.NewPurchaseOrderUseCase(poRepo, movementRepo, supplierRepo, warehouseRepo, materialRepo)
	policyUC := policy.NewPolicyUseCase(policyRepo, warehouseRepo, materialRepo)
	unitUC := registry.NewUnitUseCase(unitRepo)
	categoryUC := registry.NewCategoryUseCase(categoryRepo)
	materialUC := registry.NewMaterialUseCase(materialRepo, unitRepo, categoryRepo)
	supplierUC := registry.NewSupplierUseCase(supplierRepo, materialRepo, movementRepo, poRepo, txRunner)
	projectUC := registry.NewProjectUseCase(projectRepo)
	warehouseUC := registry.NewWarehouseUseCase(warehouseRepo, projectRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacen API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppendUC:    appendUC,
		QueryUC:     queryUC,
		PurchaseUC:  purchaseUC,
		PolicyUC:    policyUC,
		UnitUC:      unitUC,
		CategoryUC:  categoryUC,
		MaterialUC:  materialUC,
		SupplierUC:  supplierUC,
		ProjectUC:   projectUC,
		WarehouseUC: warehouseUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
