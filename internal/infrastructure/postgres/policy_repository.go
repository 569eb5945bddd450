package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.PolicyRepository = (*PolicyRepo)(nil)

// PolicyRepo persiste las políticas de mínimos por (bodega, material).
type PolicyRepo struct {
	q Querier
}

func NewPolicyRepository(q Querier) *PolicyRepo {
	return &PolicyRepo{q: q}
}

func (r *PolicyRepo) Upsert(ctx context.Context, policy *entity.WarehouseMaterialPolicy) error {
	query := `
		INSERT INTO warehouse_material_policies (warehouse_id, material_id, min_stock)
		VALUES ($1, $2, $3)
		ON CONFLICT (warehouse_id, material_id)
		DO UPDATE SET min_stock = EXCLUDED.min_stock`
	if _, err := r.q.Exec(ctx, query, policy.WarehouseID, policy.MaterialID, policy.MinStock); err != nil {
		return mapError(fmt.Errorf("upsert policy: %w", err))
	}
	return nil
}

func (r *PolicyRepo) List(ctx context.Context, limit, offset int) ([]*entity.WarehouseMaterialPolicy, error) {
	query := `
		SELECT warehouse_id, material_id, min_stock
		FROM warehouse_material_policies
		ORDER BY warehouse_id, material_id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	defer rows.Close()

	var list []*entity.WarehouseMaterialPolicy
	for rows.Next() {
		var p entity.WarehouseMaterialPolicy
		if err := rows.Scan(&p.WarehouseID, &p.MaterialID, &p.MinStock); err != nil {
			return nil, fmt.Errorf("scan policy: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListBreaches cruza políticas contra la tabla resumen. LEFT JOIN + COALESCE:
// un par sin fila de stock tiene saldo cero y puede estar bajo mínimo igual.
func (r *PolicyRepo) ListBreaches(ctx context.Context, filter repository.BreachFilter) ([]repository.BreachRow, error) {
	query := `
		SELECT p.warehouse_id, p.material_id, COALESCE(s.quantity, 0), p.min_stock
		FROM warehouse_material_policies p
		LEFT JOIN stock s
		  ON s.warehouse_id = p.warehouse_id AND s.material_id = p.material_id
		WHERE COALESCE(s.quantity, 0) < p.min_stock
		  AND ($1::bigint IS NULL OR p.warehouse_id = $1)
		  AND ($2::bigint IS NULL OR p.material_id = $2)
		ORDER BY p.warehouse_id, p.material_id`
	rows, err := r.q.Query(ctx, query, filter.WarehouseID, filter.MaterialID)
	if err != nil {
		return nil, fmt.Errorf("list breaches: %w", err)
	}
	defer rows.Close()

	var breaches []repository.BreachRow
	for rows.Next() {
		var b repository.BreachRow
		if err := rows.Scan(&b.WarehouseID, &b.MaterialID, &b.CurrentBalance, &b.MinStock); err != nil {
			return nil, fmt.Errorf("scan breach: %w", err)
		}
		breaches = append(breaches, b)
	}
	return breaches, rows.Err()
}
