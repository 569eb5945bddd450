package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// StockRepository es el puerto de la tabla resumen de saldos por (bodega, material).
// Se usa dentro de la transacción del append para mantener el resumen en el
// mismo commit que el movimiento que lo produce.
type StockRepository interface {
	Get(ctx context.Context, warehouseID, materialID int64) (*entity.Stock, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar los
	// appends concurrentes que tocan el mismo par, sin lock global del libro.
	GetForUpdate(ctx context.Context, warehouseID, materialID int64) (*entity.Stock, error)
	Upsert(ctx context.Context, stock *entity.Stock) error
}
