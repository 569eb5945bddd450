package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/registry"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// memCategoryRepo árbol de categorías en memoria.
type memCategoryRepo struct {
	byID       map[int64]*entity.Category
	nextID     int64
	references map[int64]bool // categorías con materiales asociados
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{byID: make(map[int64]*entity.Category), nextID: 1, references: make(map[int64]bool)}
}

func (r *memCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	c.ID = r.nextID
	r.nextID++
	r.byID[c.ID] = c
	return nil
}

func (r *memCategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	return r.byID[id], nil
}

func (r *memCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCategoryRepo) UpdateParent(_ context.Context, id int64, parentID *int64) error {
	r.byID[id].ParentID = parentID
	return nil
}

func (r *memCategoryRepo) IsReferenced(_ context.Context, id int64) (bool, error) {
	if r.references[id] {
		return true, nil
	}
	for _, c := range r.byID {
		if c.ParentID != nil && *c.ParentID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *memCategoryRepo) Delete(_ context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

// buildTree crea la cadena raíz -> hija -> nieta y devuelve el caso de uso.
func buildTree(t *testing.T) (*registry.CategoryUseCase, *memCategoryRepo, [3]int64) {
	t.Helper()
	repo := newMemCategoryRepo()
	uc := registry.NewCategoryUseCase(repo)
	ctx := context.Background()

	root, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Estructura"})
	require.NoError(t, err)
	child, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Acero", ParentID: &root.ID})
	require.NoError(t, err)
	grandchild, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Varillas", ParentID: &child.ID})
	require.NoError(t, err)

	return uc, repo, [3]int64{root.ID, child.ID, grandchild.ID}
}

func TestUpdateParent_RechazaCiclos(t *testing.T) {
	uc, _, ids := buildTree(t)
	ctx := context.Background()
	root, child, grandchild := ids[0], ids[1], ids[2]

	// La raíz no puede colgar de su nieta.
	_, err := uc.UpdateParent(ctx, root, &grandchild)
	assert.ErrorIs(t, err, domain.ErrCategoryCycle)

	// Ni una categoría de sí misma.
	_, err = uc.UpdateParent(ctx, child, &child)
	assert.ErrorIs(t, err, domain.ErrCategoryCycle)

	// Mover la nieta directamente bajo la raíz es válido.
	resp, err := uc.UpdateParent(ctx, grandchild, &root)
	require.NoError(t, err)
	assert.Equal(t, root, *resp.ParentID)

	// Y volverla raíz también.
	resp, err = uc.UpdateParent(ctx, grandchild, nil)
	require.NoError(t, err)
	assert.Nil(t, resp.ParentID)
}

func TestCreate_PadreInexistente(t *testing.T) {
	repo := newMemCategoryRepo()
	uc := registry.NewCategoryUseCase(repo)

	missing := int64(99)
	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Huérfana", ParentID: &missing})
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
}

func TestDelete_CategoriaReferenciada(t *testing.T) {
	uc, repo, ids := buildTree(t)
	ctx := context.Background()

	// Con hijas se rechaza.
	err := uc.Delete(ctx, ids[0])
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Con materiales asociados también.
	repo.references[ids[2]] = true
	err = uc.Delete(ctx, ids[2])
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Una hoja sin referencias se borra.
	delete(repo.references, ids[2])
	err = uc.Delete(ctx, ids[2])
	require.NoError(t, err)
	got, _ := repo.GetByID(ctx, ids[2])
	assert.Nil(t, got)
}
