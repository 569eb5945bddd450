package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Puertos del registro de referencia: CRUD con chequeo de unicidad, sin estado
// derivado. El motor del libro solo valida llaves foráneas contra estos datos.

// UnitRepository unidades de medida.
type UnitRepository interface {
	Create(ctx context.Context, unit *entity.Unit) error
	List(ctx context.Context) ([]*entity.Unit, error)
}

// CategoryRepository categorías jerárquicas de materiales.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	UpdateParent(ctx context.Context, id int64, parentID *int64) error
	// IsReferenced indica si la categoría tiene hijas o materiales asociados.
	IsReferenced(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// MaterialRepository materiales con SKU único.
type MaterialRepository interface {
	Create(ctx context.Context, material *entity.Material) error
	GetByID(ctx context.Context, id int64) (*entity.Material, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Material, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Material, error)
}

// SupplierRepository proveedores, su surtido y su historial de precios.
// Los métodos Delete* son las rutinas explícitas de cascada: el caso de uso
// las invoca en orden dentro de una transacción.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error)

	CreateMaterialLink(ctx context.Context, link *entity.SupplierMaterial) error
	ListMaterialLinks(ctx context.Context, supplierID int64) ([]*entity.SupplierMaterial, error)

	CreatePrice(ctx context.Context, price *entity.SupplierMaterialPrice) error
	ListPrices(ctx context.Context, supplierID, materialID int64) ([]*entity.SupplierMaterialPrice, error)
	// LatestPrice devuelve la cotización más reciente, o nil si no hay.
	LatestPrice(ctx context.Context, supplierID, materialID int64) (*entity.SupplierMaterialPrice, error)

	DeleteMaterialLinks(ctx context.Context, supplierID int64) error
	DeletePrices(ctx context.Context, supplierID int64) error
	Delete(ctx context.Context, id int64) error
}

// ProjectRepository proyectos/obras con código único.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id int64) (*entity.Project, error)
	List(ctx context.Context) ([]*entity.Project, error)
}

// WarehouseRepository bodegas ligadas a un proyecto.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id int64) (*entity.Warehouse, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Warehouse, error)
}
