package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo proyectos/obras con código único.
type ProjectRepo struct {
	q Querier
}

func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

func (r *ProjectRepo) Create(ctx context.Context, project *entity.Project) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO projects (code, name, city, customer, address)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
		RETURNING id`,
		project.Code, project.Name, project.City, project.Customer, project.Address,
	).Scan(&project.ID)
	if err != nil {
		return mapError(fmt.Errorf("create project: %w", err))
	}
	return nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, id int64) (*entity.Project, error) {
	var p entity.Project
	err := r.q.QueryRow(ctx, `
		SELECT id, code, name, COALESCE(city, ''), COALESCE(customer, ''), COALESCE(address, '')
		FROM projects WHERE id = $1`, id,
	).Scan(&p.ID, &p.Code, &p.Name, &p.City, &p.Customer, &p.Address)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

func (r *ProjectRepo) List(ctx context.Context) ([]*entity.Project, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, code, name, COALESCE(city, ''), COALESCE(customer, ''), COALESCE(address, '')
		FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.City, &p.Customer, &p.Address); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
