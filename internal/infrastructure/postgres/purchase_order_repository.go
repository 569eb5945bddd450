package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo persiste órdenes de compra y sus posiciones.
type PurchaseOrderRepo struct {
	q Querier
}

func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

func (r *PurchaseOrderRepo) Create(ctx context.Context, po *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (supplier_id, warehouse_id, order_date, expected_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		po.SupplierID, po.WarehouseID, po.OrderDate, po.ExpectedDate, po.Status,
	).Scan(&po.ID, &po.CreatedAt)
	if err != nil {
		return mapError(fmt.Errorf("create purchase order: %w", err))
	}
	return nil
}

func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id int64) (*entity.PurchaseOrder, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate bloquea la fila de la orden hasta el fin de la transacción.
// Un Cancel concurrente espera el lock y el reconciliador nunca decide sobre
// un estado ya revocado.
func (r *PurchaseOrderRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.PurchaseOrder, error) {
	return r.get(ctx, id, true)
}

func (r *PurchaseOrderRepo) get(ctx context.Context, id int64, forUpdate bool) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, supplier_id, warehouse_id, order_date, expected_date, status, created_at
		FROM purchase_orders WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var po entity.PurchaseOrder
	err := r.q.QueryRow(ctx, query, id).Scan(
		&po.ID, &po.SupplierID, &po.WarehouseID, &po.OrderDate, &po.ExpectedDate, &po.Status, &po.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return &po, nil
}

func (r *PurchaseOrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT id, supplier_id, warehouse_id, order_date, expected_date, status, created_at
		FROM purchase_orders ORDER BY id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseOrder
	for rows.Next() {
		var po entity.PurchaseOrder
		if err := rows.Scan(&po.ID, &po.SupplierID, &po.WarehouseID, &po.OrderDate, &po.ExpectedDate, &po.Status, &po.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &po)
	}
	return list, rows.Err()
}

func (r *PurchaseOrderRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE purchase_orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return mapError(fmt.Errorf("update purchase order status: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update purchase order status: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *PurchaseOrderRepo) Delete(ctx context.Context, id int64) error {
	// Las posiciones caen por ON DELETE CASCADE.
	if _, err := r.q.Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id); err != nil {
		return mapError(fmt.Errorf("delete purchase order: %w", err))
	}
	return nil
}

func (r *PurchaseOrderRepo) CreateItem(ctx context.Context, item *entity.POItem) error {
	query := `
		INSERT INTO po_items (po_id, material_id, qty_ordered, unit_price, currency)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		item.POID, item.MaterialID, item.QtyOrdered, item.UnitPrice, item.Currency,
	).Scan(&item.ID)
	if err != nil {
		return mapError(fmt.Errorf("create po item: %w", err))
	}
	return nil
}

func (r *PurchaseOrderRepo) ListItems(ctx context.Context, poID int64) ([]*entity.POItem, error) {
	query := `
		SELECT id, po_id, material_id, qty_ordered, unit_price, COALESCE(currency, '')
		FROM po_items WHERE po_id = $1 ORDER BY id ASC`
	rows, err := r.q.Query(ctx, query, poID)
	if err != nil {
		return nil, fmt.Errorf("list po items: %w", err)
	}
	defer rows.Close()

	var items []*entity.POItem
	for rows.Next() {
		var it entity.POItem
		if err := rows.Scan(&it.ID, &it.POID, &it.MaterialID, &it.QtyOrdered, &it.UnitPrice, &it.Currency); err != nil {
			return nil, fmt.Errorf("scan po item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *PurchaseOrderRepo) ExistsBySupplier(ctx context.Context, supplierID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM purchase_orders WHERE supplier_id = $1)`, supplierID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("purchase orders exist by supplier: %w", err)
	}
	return exists, nil
}
