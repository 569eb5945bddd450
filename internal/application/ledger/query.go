package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// QueryUseCase lecturas derivadas del libro: feed de movimientos y saldos.
// Los saldos se sirven desde la tabla resumen (mantenida en la transacción de
// cada append, así que son read-your-writes); RecomputeBalance barre el libro
// completo y es el camino de auditoría y recuperación.
type QueryUseCase struct {
	movRepo   repository.MovementRepository
	stockRepo repository.StockRepository
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(movRepo repository.MovementRepository, stockRepo repository.StockRepository) *QueryUseCase {
	return &QueryUseCase{movRepo: movRepo, stockRepo: stockRepo}
}

// ListSince devuelve movimientos con id > cursor en orden ascendente.
// El feed es reiniciable: el caller guarda el último id visto y continúa.
func (uc *QueryUseCase) ListSince(ctx context.Context, cursor int64, limit int) ([]*entity.Movement, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}
	return uc.movRepo.ListSince(ctx, cursor, limit)
}

// BalanceOf devuelve el saldo actual de un par (bodega, material) desde el resumen.
func (uc *QueryUseCase) BalanceOf(ctx context.Context, warehouseID, materialID int64) (decimal.Decimal, error) {
	stock, err := uc.stockRepo.Get(ctx, warehouseID, materialID)
	if err != nil {
		return decimal.Zero, err
	}
	return stock.Quantity, nil
}

// RecomputeBalance recalcula el saldo por barrido completo del libro.
// Debe coincidir con BalanceOf; una discrepancia indica un resumen corrupto
// que se reconstruye por replay (el libro es la única fuente de verdad).
func (uc *QueryUseCase) RecomputeBalance(ctx context.Context, warehouseID, materialID int64) (decimal.Decimal, error) {
	return uc.movRepo.SignedSum(ctx, warehouseID, materialID)
}
