package registry

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías jerárquicas de materiales.
// Al mover una categoría se recorre la cadena de padres y se rechaza cualquier
// ciclo: sin ORM que lo proteja, el invariante se valida en el write path.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría; ParentID nil para categorías raíz.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != nil {
		parent, err := uc.repo.GetByID(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrReferenceNotFound
		}
	}
	category := &entity.Category{Name: in.Name, ParentID: in.ParentID}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// UpdateParent mueve la categoría bajo otro padre (o a la raíz con nil).
// Rechaza con ErrCategoryCycle si el nuevo padre es la propia categoría o un
// descendiente suyo.
func (uc *CategoryUseCase) UpdateParent(ctx context.Context, id int64, parentID *int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if parentID != nil {
		if err := uc.checkCycle(ctx, id, *parentID); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.UpdateParent(ctx, id, parentID); err != nil {
		return nil, err
	}
	category.ParentID = parentID
	return toCategoryResponse(category), nil
}

// checkCycle sube por la cadena de padres desde newParentID; si encuentra a la
// propia categoría, colgarse de ese padre formaría un ciclo.
func (uc *CategoryUseCase) checkCycle(ctx context.Context, id, newParentID int64) error {
	current := newParentID
	for {
		if current == id {
			return domain.ErrCategoryCycle
		}
		node, err := uc.repo.GetByID(ctx, current)
		if err != nil {
			return err
		}
		if node == nil {
			return domain.ErrReferenceNotFound
		}
		if node.ParentID == nil {
			return nil
		}
		current = *node.ParentID
	}
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// Delete borra una categoría sin hijas ni materiales; si está referenciada se
// rechaza (la relación es de consulta, no de pertenencia: no hay cascada).
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	referenced, err := uc.repo.IsReferenced(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return domain.ErrConflict
	}
	return uc.repo.Delete(ctx, id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, ParentID: c.ParentID}
}
