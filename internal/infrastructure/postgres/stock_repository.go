package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo mantiene el agregado de saldos por (bodega, material).
type StockRepo struct {
	q Querier
}

func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get devuelve el saldo actual. Si no existe fila el saldo es cero, no un error.
func (r *StockRepo) Get(ctx context.Context, warehouseID, materialID int64) (*entity.Stock, error) {
	return r.get(ctx, warehouseID, materialID, false)
}

// GetForUpdate lee el saldo con SELECT FOR UPDATE. Debe llamarse dentro de una
// transacción: el lock de fila serializa escritores concurrentes sobre el mismo
// par (bodega, material).
func (r *StockRepo) GetForUpdate(ctx context.Context, warehouseID, materialID int64) (*entity.Stock, error) {
	return r.get(ctx, warehouseID, materialID, true)
}

func (r *StockRepo) get(ctx context.Context, warehouseID, materialID int64, forUpdate bool) (*entity.Stock, error) {
	query := `
		SELECT warehouse_id, material_id, quantity, updated_at
		FROM stock
		WHERE warehouse_id = $1 AND material_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var s entity.Stock
	err := r.q.QueryRow(ctx, query, warehouseID, materialID).
		Scan(&s.WarehouseID, &s.MaterialID, &s.Quantity, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return &entity.Stock{
			WarehouseID: warehouseID,
			MaterialID:  materialID,
			Quantity:    decimal.Zero,
			UpdatedAt:   time.Now().UTC(),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert fija el saldo absoluto del par (bodega, material).
func (r *StockRepo) Upsert(ctx context.Context, stock *entity.Stock) error {
	query := `
		INSERT INTO stock (warehouse_id, material_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (warehouse_id, material_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, stock.WarehouseID, stock.MaterialID, stock.Quantity); err != nil {
		return mapError(fmt.Errorf("upsert stock: %w", err))
	}
	return nil
}
