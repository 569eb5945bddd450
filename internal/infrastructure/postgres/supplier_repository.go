package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo proveedores, su surtido y su historial de cotizaciones.
type SupplierRepo struct {
	q Querier
}

func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO suppliers (name, phone, email, tax_id)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''))
		RETURNING id`,
		supplier.Name, supplier.Phone, supplier.Email, supplier.TaxID,
	).Scan(&supplier.ID)
	if err != nil {
		return mapError(fmt.Errorf("create supplier: %w", err))
	}
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(ctx, `
		SELECT id, name, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(tax_id, '')
		FROM suppliers WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Phone, &s.Email, &s.TaxID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(tax_id, '')
		FROM suppliers ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.Email, &s.TaxID); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SupplierRepo) CreateMaterialLink(ctx context.Context, link *entity.SupplierMaterial) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO supplier_materials (supplier_id, material_id, lead_time_days, min_order_qty, currency)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING id`,
		link.SupplierID, link.MaterialID, link.LeadTimeDays, link.MinOrderQty, link.Currency,
	).Scan(&link.ID)
	if err != nil {
		return mapError(fmt.Errorf("create supplier material link: %w", err))
	}
	return nil
}

func (r *SupplierRepo) ListMaterialLinks(ctx context.Context, supplierID int64) ([]*entity.SupplierMaterial, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, supplier_id, material_id, lead_time_days, min_order_qty, COALESCE(currency, '')
		FROM supplier_materials WHERE supplier_id = $1 ORDER BY id`, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list supplier material links: %w", err)
	}
	defer rows.Close()

	var links []*entity.SupplierMaterial
	for rows.Next() {
		var l entity.SupplierMaterial
		if err := rows.Scan(&l.ID, &l.SupplierID, &l.MaterialID, &l.LeadTimeDays, &l.MinOrderQty, &l.Currency); err != nil {
			return nil, fmt.Errorf("scan supplier material link: %w", err)
		}
		links = append(links, &l)
	}
	return links, rows.Err()
}

func (r *SupplierRepo) CreatePrice(ctx context.Context, price *entity.SupplierMaterialPrice) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO supplier_material_prices (supplier_id, material_id, price, currency, price_date)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING id`,
		price.SupplierID, price.MaterialID, price.Price, price.Currency, price.PriceDate,
	).Scan(&price.ID)
	if err != nil {
		return mapError(fmt.Errorf("create supplier price: %w", err))
	}
	return nil
}

func (r *SupplierRepo) ListPrices(ctx context.Context, supplierID, materialID int64) ([]*entity.SupplierMaterialPrice, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, supplier_id, material_id, price, COALESCE(currency, ''), price_date
		FROM supplier_material_prices
		WHERE supplier_id = $1 AND material_id = $2
		ORDER BY price_date DESC, id DESC`, supplierID, materialID)
	if err != nil {
		return nil, fmt.Errorf("list supplier prices: %w", err)
	}
	defer rows.Close()

	var prices []*entity.SupplierMaterialPrice
	for rows.Next() {
		var p entity.SupplierMaterialPrice
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.MaterialID, &p.Price, &p.Currency, &p.PriceDate); err != nil {
			return nil, fmt.Errorf("scan supplier price: %w", err)
		}
		prices = append(prices, &p)
	}
	return prices, rows.Err()
}

// LatestPrice devuelve la cotización más reciente por fecha, o nil si no hay.
func (r *SupplierRepo) LatestPrice(ctx context.Context, supplierID, materialID int64) (*entity.SupplierMaterialPrice, error) {
	var p entity.SupplierMaterialPrice
	err := r.q.QueryRow(ctx, `
		SELECT id, supplier_id, material_id, price, COALESCE(currency, ''), price_date
		FROM supplier_material_prices
		WHERE supplier_id = $1 AND material_id = $2
		ORDER BY price_date DESC, id DESC
		LIMIT 1`, supplierID, materialID,
	).Scan(&p.ID, &p.SupplierID, &p.MaterialID, &p.Price, &p.Currency, &p.PriceDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest supplier price: %w", err)
	}
	return &p, nil
}

func (r *SupplierRepo) DeleteMaterialLinks(ctx context.Context, supplierID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM supplier_materials WHERE supplier_id = $1`, supplierID); err != nil {
		return mapError(fmt.Errorf("delete supplier material links: %w", err))
	}
	return nil
}

func (r *SupplierRepo) DeletePrices(ctx context.Context, supplierID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM supplier_material_prices WHERE supplier_id = $1`, supplierID); err != nil {
		return mapError(fmt.Errorf("delete supplier prices: %w", err))
	}
	return nil
}

func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id); err != nil {
		return mapError(fmt.Errorf("delete supplier: %w", err))
	}
	return nil
}
