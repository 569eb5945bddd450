package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// BreachRow es una política incumplida: el saldo actual quedó por debajo del
// mínimo configurado para el par (bodega, material).
type BreachRow struct {
	WarehouseID    int64
	MaterialID     int64
	CurrentBalance decimal.Decimal
	MinStock       decimal.Decimal
}

// BreachFilter acota la evaluación a una bodega o un material (chequeo
// incremental barato tras un movimiento que tocó ese par). Campos nil = sin filtro.
type BreachFilter struct {
	WarehouseID *int64
	MaterialID  *int64
}

// PolicyRepository es el puerto de las políticas de mínimos de existencia.
type PolicyRepository interface {
	Upsert(ctx context.Context, policy *entity.WarehouseMaterialPolicy) error
	List(ctx context.Context, limit, offset int) ([]*entity.WarehouseMaterialPolicy, error)
	// ListBreaches cruza políticas contra la tabla resumen de saldos (fila
	// ausente cuenta como cero) y devuelve los pares bajo mínimo.
	ListBreaches(ctx context.Context, filter BreachFilter) ([]BreachRow, error)
}
