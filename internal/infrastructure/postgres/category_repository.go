package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo categorías jerárquicas de materiales.
type CategoryRepo struct {
	q Querier
}

func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO categories (name, parent_id) VALUES ($1, $2) RETURNING id`,
		category.Name, category.ParentID,
	).Scan(&category.ID)
	if err != nil {
		return mapError(fmt.Errorf("create category: %w", err))
	}
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx,
		`SELECT id, name, parent_id FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.ParentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, parent_id FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CategoryRepo) UpdateParent(ctx context.Context, id int64, parentID *int64) error {
	tag, err := r.q.Exec(ctx, `UPDATE categories SET parent_id = $2 WHERE id = $1`, id, parentID)
	if err != nil {
		return mapError(fmt.Errorf("update category parent: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update category parent: %w", pgx.ErrNoRows)
	}
	return nil
}

// IsReferenced indica si la categoría tiene hijas o materiales asociados.
func (r *CategoryRepo) IsReferenced(ctx context.Context, id int64) (bool, error) {
	var referenced bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM categories WHERE parent_id = $1)
		    OR EXISTS (SELECT 1 FROM materials WHERE category_id = $1)`, id,
	).Scan(&referenced)
	if err != nil {
		return false, fmt.Errorf("category is referenced: %w", err)
	}
	return referenced, nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return mapError(fmt.Errorf("delete category: %w", err))
	}
	return nil
}
