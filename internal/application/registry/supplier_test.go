package registry_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/registry"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// memSupplierRepo proveedor con surtido y precios en memoria, con registro del
// orden de la cascada de borrado.
type memSupplierRepo struct {
	suppliers map[int64]*entity.Supplier
	links     []*entity.SupplierMaterial
	prices    []*entity.SupplierMaterialPrice
	nextID    int64
	deletions []string
}

func newMemSupplierRepo() *memSupplierRepo {
	return &memSupplierRepo{suppliers: make(map[int64]*entity.Supplier), nextID: 1}
}

func (r *memSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	s.ID = r.nextID
	r.nextID++
	r.suppliers[s.ID] = s
	return nil
}

func (r *memSupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}

func (r *memSupplierRepo) List(_ context.Context, _, _ int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.suppliers {
		out = append(out, s)
	}
	return out, nil
}

func (r *memSupplierRepo) CreateMaterialLink(_ context.Context, link *entity.SupplierMaterial) error {
	for _, l := range r.links {
		if l.SupplierID == link.SupplierID && l.MaterialID == link.MaterialID {
			return domain.ErrDuplicate
		}
	}
	link.ID = int64(len(r.links) + 1)
	r.links = append(r.links, link)
	return nil
}

func (r *memSupplierRepo) ListMaterialLinks(_ context.Context, supplierID int64) ([]*entity.SupplierMaterial, error) {
	var out []*entity.SupplierMaterial
	for _, l := range r.links {
		if l.SupplierID == supplierID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memSupplierRepo) CreatePrice(_ context.Context, price *entity.SupplierMaterialPrice) error {
	price.ID = int64(len(r.prices) + 1)
	r.prices = append(r.prices, price)
	return nil
}

func (r *memSupplierRepo) ListPrices(_ context.Context, supplierID, materialID int64) ([]*entity.SupplierMaterialPrice, error) {
	var out []*entity.SupplierMaterialPrice
	for _, p := range r.prices {
		if p.SupplierID == supplierID && p.MaterialID == materialID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memSupplierRepo) LatestPrice(_ context.Context, supplierID, materialID int64) (*entity.SupplierMaterialPrice, error) {
	var latest *entity.SupplierMaterialPrice
	for _, p := range r.prices {
		if p.SupplierID != supplierID || p.MaterialID != materialID {
			continue
		}
		if latest == nil || p.PriceDate.After(latest.PriceDate) {
			latest = p
		}
	}
	return latest, nil
}

func (r *memSupplierRepo) DeleteMaterialLinks(_ context.Context, supplierID int64) error {
	r.deletions = append(r.deletions, "links")
	kept := r.links[:0]
	for _, l := range r.links {
		if l.SupplierID != supplierID {
			kept = append(kept, l)
		}
	}
	r.links = kept
	return nil
}

func (r *memSupplierRepo) DeletePrices(_ context.Context, supplierID int64) error {
	r.deletions = append(r.deletions, "prices")
	kept := r.prices[:0]
	for _, p := range r.prices {
		if p.SupplierID != supplierID {
			kept = append(kept, p)
		}
	}
	r.prices = kept
	return nil
}

func (r *memSupplierRepo) Delete(_ context.Context, id int64) error {
	r.deletions = append(r.deletions, "supplier")
	delete(r.suppliers, id)
	return nil
}

// stubMaterialRepo materiales conocidos por ID.
type stubMaterialRepo struct{ known map[int64]bool }

func (r *stubMaterialRepo) Create(_ context.Context, _ *entity.Material) error { return nil }
func (r *stubMaterialRepo) GetByID(_ context.Context, id int64) (*entity.Material, error) {
	if r.known[id] {
		return &entity.Material{ID: id}, nil
	}
	return nil, nil
}
func (r *stubMaterialRepo) GetBySKU(_ context.Context, _ string) (*entity.Material, error) {
	return nil, nil
}
func (r *stubMaterialRepo) List(_ context.Context, _, _ int) ([]*entity.Material, error) {
	return nil, nil
}

// stubMovementRepo solo responde si el proveedor tiene movimientos.
type stubMovementRepo struct{ used bool }

func (r *stubMovementRepo) Create(_ context.Context, _ *entity.Movement) error { return nil }
func (r *stubMovementRepo) GetByID(_ context.Context, _ int64) (*entity.Movement, error) {
	return nil, nil
}
func (r *stubMovementRepo) GetByIdempotencyKey(_ context.Context, _ string) (*entity.Movement, error) {
	return nil, nil
}
func (r *stubMovementRepo) ListSince(_ context.Context, _ int64, _ int) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *stubMovementRepo) SumReceiptsByOrder(_ context.Context, _ int64) (map[int64]decimal.Decimal, error) {
	return nil, nil
}
func (r *stubMovementRepo) SignedSum(_ context.Context, _, _ int64) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (r *stubMovementRepo) ExistsBySupplier(_ context.Context, _ int64) (bool, error) {
	return r.used, nil
}

// stubPORepo solo responde si el proveedor tiene órdenes.
type stubPORepo struct{ used bool }

func (r *stubPORepo) Create(_ context.Context, _ *entity.PurchaseOrder) error { return nil }
func (r *stubPORepo) GetByID(_ context.Context, _ int64) (*entity.PurchaseOrder, error) {
	return nil, nil
}
func (r *stubPORepo) GetByIDForUpdate(_ context.Context, _ int64) (*entity.PurchaseOrder, error) {
	return nil, nil
}
func (r *stubPORepo) List(_ context.Context, _, _ int) ([]*entity.PurchaseOrder, error) {
	return nil, nil
}
func (r *stubPORepo) UpdateStatus(_ context.Context, _ int64, _ string) error { return nil }
func (r *stubPORepo) Delete(_ context.Context, _ int64) error                 { return nil }
func (r *stubPORepo) CreateItem(_ context.Context, _ *entity.POItem) error    { return nil }
func (r *stubPORepo) ListItems(_ context.Context, _ int64) ([]*entity.POItem, error) {
	return nil, nil
}
func (r *stubPORepo) ExistsBySupplier(_ context.Context, _ int64) (bool, error) {
	return r.used, nil
}

// passthroughTxRunner ejecuta la cascada sin transacción real.
type passthroughTxRunner struct{ repo repository.SupplierRepository }

func (r *passthroughTxRunner) RunSupplier(ctx context.Context, fn func(repo repository.SupplierRepository) error) error {
	return fn(r.repo)
}

func newSupplierFixture(movUsed, poUsed bool) (*registry.SupplierUseCase, *memSupplierRepo) {
	repo := newMemSupplierRepo()
	uc := registry.NewSupplierUseCase(
		repo,
		&stubMaterialRepo{known: map[int64]bool{1: true}},
		&stubMovementRepo{used: movUsed},
		&stubPORepo{used: poUsed},
		&passthroughTxRunner{repo: repo},
	)
	return uc, repo
}

func TestSupplierDelete_CascadaSobreSurtidoYPrecios(t *testing.T) {
	uc, repo := newSupplierFixture(false, false)
	ctx := context.Background()

	sup, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "Aceros del Sur"})
	require.NoError(t, err)
	_, err = uc.AddMaterial(ctx, sup.ID, dto.CreateSupplierMaterialRequest{MaterialID: 1})
	require.NoError(t, err)
	_, err = uc.AddPrice(ctx, sup.ID, dto.CreateSupplierPriceRequest{
		MaterialID: 1,
		Price:      decimal.NewFromInt(3500),
		PriceDate:  "2026-08-01",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, sup.ID))

	// Precios y surtido caen antes que el proveedor.
	assert.Equal(t, []string{"prices", "links", "supplier"}, repo.deletions)
	assert.Empty(t, repo.suppliers)
	assert.Empty(t, repo.links)
	assert.Empty(t, repo.prices)
}

func TestSupplierDelete_RechazadoSiHayHistorial(t *testing.T) {
	// Con movimientos que lo referencian.
	uc, repo := newSupplierFixture(true, false)
	ctx := context.Background()
	sup, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "Aceros"})
	require.NoError(t, err)
	assert.ErrorIs(t, uc.Delete(ctx, sup.ID), domain.ErrConflict)
	assert.Len(t, repo.suppliers, 1)

	// Con órdenes de compra que lo referencian.
	uc, repo = newSupplierFixture(false, true)
	sup, err = uc.Create(ctx, dto.CreateSupplierRequest{Name: "Aceros"})
	require.NoError(t, err)
	assert.ErrorIs(t, uc.Delete(ctx, sup.ID), domain.ErrConflict)
	assert.Len(t, repo.suppliers, 1)
}

func TestSupplierAddMaterial_ParDuplicado(t *testing.T) {
	uc, _ := newSupplierFixture(false, false)
	ctx := context.Background()

	sup, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "Aceros"})
	require.NoError(t, err)
	_, err = uc.AddMaterial(ctx, sup.ID, dto.CreateSupplierMaterialRequest{MaterialID: 1})
	require.NoError(t, err)
	_, err = uc.AddMaterial(ctx, sup.ID, dto.CreateSupplierMaterialRequest{MaterialID: 1})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSupplierLatestPrice(t *testing.T) {
	uc, repo := newSupplierFixture(false, false)
	ctx := context.Background()

	sup, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "Aceros"})
	require.NoError(t, err)
	for _, p := range []struct {
		price string
		date  string
	}{
		{"3450", "2026-06-01"},
		{"3610", "2026-08-20"},
		{"3580", "2026-07-15"},
	} {
		_, err = uc.AddPrice(ctx, sup.ID, dto.CreateSupplierPriceRequest{
			MaterialID: 1,
			Price:      decimal.RequireFromString(p.price),
			PriceDate:  p.date,
		})
		require.NoError(t, err)
	}

	latest, err := repo.LatestPrice(ctx, sup.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.True(t, latest.Price.Equal(decimal.RequireFromString("3610")))
}
