package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// Carga datos de demostración: catálogo básico, un proveedor con cotizaciones,
// un proyecto con dos bodegas y políticas de mínimos. Pensado para entornos de
// desarrollo; no es idempotente sobre una base ya poblada.
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

	unitRepo := postgres.NewUnitRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	policyRepo := postgres.NewPolicyRepository(pool)

	und := &entity.Unit{Name: "unidad", Symbol: "und"}
	kg := &entity.Unit{Name: "kilogramo", Symbol: "kg"}
	m3 := &entity.Unit{Name: "metro cúbico", Symbol: "m3"}
	for _, u := range []*entity.Unit{und, kg, m3} {
		if err := unitRepo.Create(ctx, u); err != nil {
			log.Fatal().Err(err).Str("unit", u.Name).Msg("crear unidad")
		}
	}

	estructura := &entity.Category{Name: "Estructura"}
	if err := categoryRepo.Create(ctx, estructura); err != nil {
		log.Fatal().Err(err).Msg("crear categoría raíz")
	}
	acero := &entity.Category{Name: "Acero", ParentID: &estructura.ID}
	concreto := &entity.Category{Name: "Concreto", ParentID: &estructura.ID}
	for _, c := range []*entity.Category{acero, concreto} {
		if err := categoryRepo.Create(ctx, c); err != nil {
			log.Fatal().Err(err).Str("category", c.Name).Msg("crear categoría")
		}
	}

	varilla := &entity.Material{SKU: "VAR-12", Name: "Varilla corrugada 1/2\"", UnitID: kg.ID, CategoryID: acero.ID}
	cemento := &entity.Material{SKU: "CEM-50", Name: "Cemento gris 50kg", UnitID: und.ID, CategoryID: concreto.ID}
	arena := &entity.Material{SKU: "ARE-M3", Name: "Arena de río", UnitID: m3.ID, CategoryID: concreto.ID}
	for _, m := range []*entity.Material{varilla, cemento, arena} {
		if err := materialRepo.Create(ctx, m); err != nil {
			log.Fatal().Err(err).Str("sku", m.SKU).Msg("crear material")
		}
	}

	acerosur := &entity.Supplier{Name: "Aceros del Sur S.A.S.", Phone: "+57 300 555 0101", Email: "ventas@acerosdelsur.co", TaxID: "900123456-7"}
	if err := supplierRepo.Create(ctx, acerosur); err != nil {
		log.Fatal().Err(err).Msg("crear proveedor")
	}
	lead := 5
	minQty := decimal.NewFromInt(500)
	if err := supplierRepo.CreateMaterialLink(ctx, &entity.SupplierMaterial{
		SupplierID:   acerosur.ID,
		MaterialID:   varilla.ID,
		LeadTimeDays: &lead,
		MinOrderQty:  &minQty,
		Currency:     "COP",
	}); err != nil {
		log.Fatal().Err(err).Msg("crear surtido")
	}
	for days, price := range map[int]string{60: "3450", 30: "3580", 7: "3610"} {
		if err := supplierRepo.CreatePrice(ctx, &entity.SupplierMaterialPrice{
			SupplierID: acerosur.ID,
			MaterialID: varilla.ID,
			Price:      decimal.RequireFromString(price),
			Currency:   "COP",
			PriceDate:  time.Now().AddDate(0, 0, -days),
		}); err != nil {
			log.Fatal().Err(err).Msg("crear cotización")
		}
	}

	torres := &entity.Project{Code: "TOR-NORTE", Name: "Torres del Norte", City: "Medellín", Customer: "Constructora Andina"}
	if err := projectRepo.Create(ctx, torres); err != nil {
		log.Fatal().Err(err).Msg("crear proyecto")
	}
	central := &entity.Warehouse{ProjectID: torres.ID, Name: "Bodega central", Type: "central"}
	obra := &entity.Warehouse{ProjectID: torres.ID, Name: "Bodega de obra torre A", Type: "obra"}
	for _, w := range []*entity.Warehouse{central, obra} {
		if err := warehouseRepo.Create(ctx, w); err != nil {
			log.Fatal().Err(err).Str("warehouse", w.Name).Msg("crear bodega")
		}
	}

	for _, p := range []*entity.WarehouseMaterialPolicy{
		{WarehouseID: central.ID, MaterialID: varilla.ID, MinStock: decimal.NewFromInt(1000)},
		{WarehouseID: central.ID, MaterialID: cemento.ID, MinStock: decimal.NewFromInt(200)},
		{WarehouseID: obra.ID, MaterialID: cemento.ID, MinStock: decimal.NewFromInt(50)},
	} {
		if err := policyRepo.Upsert(ctx, p); err != nil {
			log.Fatal().Err(err).Msg("crear política")
		}
	}

	log.Info().Msg("datos de demostración cargados")
}
