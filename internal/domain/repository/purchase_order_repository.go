package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// PurchaseOrderRepository es el puerto de persistencia de órdenes de compra y
// sus posiciones. La orden es dueña de sus POItems (borrado en cascada).
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id int64) (*entity.PurchaseOrder, error)
	// GetByIDForUpdate bloquea la fila de la orden dentro de la transacción en
	// curso. El reconciliador lo usa para que un Cancel concurrente no pueda
	// colarse entre la lectura del estado y su escritura derivada.
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.PurchaseOrder, error)
	List(ctx context.Context, limit, offset int) ([]*entity.PurchaseOrder, error)
	// UpdateStatus persiste el estado derivado o fijado por el operador.
	// Es el único campo mutable de la orden.
	UpdateStatus(ctx context.Context, id int64, status string) error
	// Delete borra la orden y sus posiciones (solo permitido en DRAFT, lo
	// verifica el caso de uso).
	Delete(ctx context.Context, id int64) error

	CreateItem(ctx context.Context, item *entity.POItem) error
	ListItems(ctx context.Context, poID int64) ([]*entity.POItem, error)

	ExistsBySupplier(ctx context.Context, supplierID int64) (bool, error)
}
