package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo materiales con SKU único.
type MaterialRepo struct {
	q Querier
}

func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

func (r *MaterialRepo) Create(ctx context.Context, material *entity.Material) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO materials (sku, name, unit_id, category_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		material.SKU, material.Name, material.UnitID, material.CategoryID,
	).Scan(&material.ID)
	if err != nil {
		return mapError(fmt.Errorf("create material: %w", err))
	}
	return nil
}

func (r *MaterialRepo) GetByID(ctx context.Context, id int64) (*entity.Material, error) {
	var m entity.Material
	err := r.q.QueryRow(ctx,
		`SELECT id, sku, name, unit_id, category_id FROM materials WHERE id = $1`, id,
	).Scan(&m.ID, &m.SKU, &m.Name, &m.UnitID, &m.CategoryID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

func (r *MaterialRepo) GetBySKU(ctx context.Context, sku string) (*entity.Material, error) {
	var m entity.Material
	err := r.q.QueryRow(ctx,
		`SELECT id, sku, name, unit_id, category_id FROM materials WHERE sku = $1`, sku,
	).Scan(&m.ID, &m.SKU, &m.Name, &m.UnitID, &m.CategoryID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get material by sku: %w", err)
	}
	return &m, nil
}

func (r *MaterialRepo) List(ctx context.Context, limit, offset int) ([]*entity.Material, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, sku, name, unit_id, category_id FROM materials ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.SKU, &m.Name, &m.UnitID, &m.CategoryID); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
