package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). La tabla es append-only: este adaptador no expone
// UPDATE ni DELETE y la tabla tampoco los permite.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `
	id, type, material_id, quantity, direction, occurred_at,
	source_warehouse_id, destination_warehouse_id, supplier_id, purchase_order_id, project_id, unit_price,
	ext_doc_no, ext_doc_date, vehicle_number, driver_name, shipped_by_name, accepted_by_name, ship_date, load_date,
	file_url, file_mime, file_hash, idempotency_key, created_at`

// Create inserta el movimiento y completa ID (bigserial) y CreatedAt vía RETURNING.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO stock_movements (
			type, material_id, quantity, direction, occurred_at,
			source_warehouse_id, destination_warehouse_id, supplier_id, purchase_order_id, project_id, unit_price,
			ext_doc_no, ext_doc_date, vehicle_number, driver_name, shipped_by_name, accepted_by_name, ship_date, load_date,
			file_url, file_mime, file_hash, idempotency_key
		)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11,
		        NULLIF($12, ''), $13, NULLIF($14, ''), NULLIF($15, ''), NULLIF($16, ''), NULLIF($17, ''), $18, $19,
		        NULLIF($20, ''), NULLIF($21, ''), NULLIF($22, ''), $23)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		m.Type, m.MaterialID, m.Quantity, m.Direction, m.OccurredAt,
		m.SourceWarehouseID, m.DestinationWarehouseID, m.SupplierID, m.PurchaseOrderID, m.ProjectID, m.UnitPrice,
		m.ExtDocNo, m.ExtDocDate, m.VehicleNumber, m.DriverName, m.ShippedByName, m.AcceptedByName, m.ShipDate, m.LoadDate,
		m.FileURL, m.FileMIME, m.FileHash, m.IdempotencyKey,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return mapError(fmt.Errorf("create movement: %w", err))
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(ctx context.Context, id int64) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// GetByIdempotencyKey devuelve el movimiento registrado con esa clave, o nil.
func (r *MovementRepo) GetByIdempotencyKey(ctx context.Context, key string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE idempotency_key = $1`
	m, err := scanMovement(r.q.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement by idempotency key: %w", err)
	}
	return m, nil
}

// ListSince devuelve movimientos con id > cursor en orden ascendente (feed reiniciable).
func (r *MovementRepo) ListSince(ctx context.Context, cursor int64, limit int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + `
		FROM stock_movements WHERE id > $1 ORDER BY id ASC LIMIT $2`
	rows, err := r.q.Query(ctx, query, cursor, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements since: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// SumReceiptsByOrder suma las cantidades RECEIPT de una orden, por material.
func (r *MovementRepo) SumReceiptsByOrder(ctx context.Context, poID int64) (map[int64]decimal.Decimal, error) {
	query := `
		SELECT material_id, COALESCE(SUM(quantity), 0)
		FROM stock_movements
		WHERE type = 'RECEIPT' AND purchase_order_id = $1
		GROUP BY material_id`
	rows, err := r.q.Query(ctx, query, poID)
	if err != nil {
		return nil, fmt.Errorf("sum receipts by order: %w", err)
	}
	defer rows.Close()

	received := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var materialID int64
		var qty decimal.Decimal
		if err := rows.Scan(&materialID, &qty); err != nil {
			return nil, fmt.Errorf("scan receipt sum: %w", err)
		}
		received[materialID] = qty
	}
	return received, rows.Err()
}

// SignedSum recalcula el saldo de (bodega, material) por barrido completo del
// libro: RECEIPT y ADJUST IN suman en destino, ISSUE y ADJUST OUT restan en
// origen, TRANSFER resta en origen y suma en destino.
func (r *MovementRepo) SignedSum(ctx context.Context, warehouseID, materialID int64) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(
			CASE
				WHEN destination_warehouse_id = $1 AND (type = 'RECEIPT' OR type = 'TRANSFER' OR (type = 'ADJUST' AND direction = 'IN')) THEN quantity
				WHEN source_warehouse_id = $1 AND (type = 'ISSUE' OR type = 'TRANSFER' OR (type = 'ADJUST' AND direction = 'OUT')) THEN -quantity
				ELSE 0
			END
		), 0)
		FROM stock_movements
		WHERE material_id = $2
		  AND (source_warehouse_id = $1 OR destination_warehouse_id = $1)`
	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, query, warehouseID, materialID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("signed sum: %w", err)
	}
	return sum, nil
}

// ExistsBySupplier indica si algún movimiento referencia al proveedor.
func (r *MovementRepo) ExistsBySupplier(ctx context.Context, supplierID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM stock_movements WHERE supplier_id = $1)`, supplierID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by supplier: %w", err)
	}
	return exists, nil
}

// rowScanner cubre pgx.Row y pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovement(row rowScanner) (*entity.Movement, error) {
	var m entity.Movement
	var direction, extDocNo, vehicleNumber, driverName, shippedBy, acceptedBy, fileURL, fileMIME, fileHash *string
	err := row.Scan(
		&m.ID, &m.Type, &m.MaterialID, &m.Quantity, &direction, &m.OccurredAt,
		&m.SourceWarehouseID, &m.DestinationWarehouseID, &m.SupplierID, &m.PurchaseOrderID, &m.ProjectID, &m.UnitPrice,
		&extDocNo, &m.ExtDocDate, &vehicleNumber, &driverName, &shippedBy, &acceptedBy, &m.ShipDate, &m.LoadDate,
		&fileURL, &fileMIME, &fileHash, &m.IdempotencyKey, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Direction = deref(direction)
	m.ExtDocNo = deref(extDocNo)
	m.VehicleNumber = deref(vehicleNumber)
	m.DriverName = deref(driverName)
	m.ShippedByName = deref(shippedBy)
	m.AcceptedByName = deref(acceptedBy)
	m.FileURL = deref(fileURL)
	m.FileMIME = deref(fileMIME)
	m.FileHash = deref(fileHash)
	return &m, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
