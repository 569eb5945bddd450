package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// MovementRepository es el puerto de persistencia del libro de movimientos.
// Append-only: no existe ninguna operación de edición ni borrado.
type MovementRepository interface {
	// Create inserta el movimiento y completa ID (serial monotónico) y CreatedAt.
	Create(ctx context.Context, m *entity.Movement) error
	GetByID(ctx context.Context, id int64) (*entity.Movement, error)
	// GetByIdempotencyKey devuelve el movimiento ya registrado con esa clave, o nil.
	GetByIdempotencyKey(ctx context.Context, key string) (*entity.Movement, error)
	// ListSince devuelve movimientos con id > cursor en orden ascendente:
	// el feed reiniciable que consumen agregador, reconciliador y evaluador.
	ListSince(ctx context.Context, cursor int64, limit int) ([]*entity.Movement, error)
	// SumReceiptsByOrder suma las cantidades RECEIPT de una orden, por material.
	SumReceiptsByOrder(ctx context.Context, poID int64) (map[int64]decimal.Decimal, error)
	// SignedSum recalcula el saldo de (bodega, material) barriendo el libro
	// completo. Camino de auditoría y de recuperación: el resumen incremental
	// debe coincidir siempre con este valor.
	SignedSum(ctx context.Context, warehouseID, materialID int64) (decimal.Decimal, error)
	// ExistsBySupplier indica si algún movimiento referencia al proveedor.
	ExistsBySupplier(ctx context.Context, supplierID int64) (bool, error)
}
