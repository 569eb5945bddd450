package policy

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// PolicyUseCase administra los mínimos de existencia por (bodega, material) y
// evalúa incumplimientos contra los saldos derivados del libro.
type PolicyUseCase struct {
	policyRepo    repository.PolicyRepository
	warehouseRepo repository.WarehouseRepository
	materialRepo  repository.MaterialRepository
}

// NewPolicyUseCase construye el caso de uso.
func NewPolicyUseCase(
	policyRepo repository.PolicyRepository,
	warehouseRepo repository.WarehouseRepository,
	materialRepo repository.MaterialRepository,
) *PolicyUseCase {
	return &PolicyUseCase{
		policyRepo:    policyRepo,
		warehouseRepo: warehouseRepo,
		materialRepo:  materialRepo,
	}
}

// Upsert crea o actualiza el mínimo de un par tras validar las referencias.
func (uc *PolicyUseCase) Upsert(ctx context.Context, in dto.UpsertPolicyRequest) (*dto.PolicyResponse, error) {
	if in.MinStock.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	wh, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	material, err := uc.materialRepo.GetByID(ctx, in.MaterialID)
	if err != nil {
		return nil, err
	}
	if wh == nil || material == nil {
		return nil, domain.ErrReferenceNotFound
	}

	policy := &entity.WarehouseMaterialPolicy{
		WarehouseID: in.WarehouseID,
		MaterialID:  in.MaterialID,
		MinStock:    in.MinStock,
	}
	if err := uc.policyRepo.Upsert(ctx, policy); err != nil {
		return nil, err
	}
	return &dto.PolicyResponse{
		WarehouseID: policy.WarehouseID,
		MaterialID:  policy.MaterialID,
		MinStock:    policy.MinStock,
	}, nil
}

// List lista las políticas configuradas.
func (uc *PolicyUseCase) List(ctx context.Context, limit, offset int) ([]dto.PolicyResponse, error) {
	list, err := uc.policyRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PolicyResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.PolicyResponse{
			WarehouseID: p.WarehouseID,
			MaterialID:  p.MaterialID,
			MinStock:    p.MinStock,
		})
	}
	return out, nil
}

// EvaluateInput filtros de evaluación. WarehouseID/MaterialID en nil evalúan
// todas las políticas; SortByDeficit ordena de mayor a menor faltante.
type EvaluateInput struct {
	WarehouseID   *int64
	MaterialID    *int64
	SortByDeficit bool
}

// Evaluate devuelve un incumplimiento por cada política cuyo saldo actual es
// estrictamente menor que el mínimo configurado. Con filtro por bodega o
// material sirve como chequeo incremental barato después de un movimiento que
// tocó ese par.
func (uc *PolicyUseCase) Evaluate(ctx context.Context, in EvaluateInput) ([]dto.BreachResponse, error) {
	rows, err := uc.policyRepo.ListBreaches(ctx, repository.BreachFilter{
		WarehouseID: in.WarehouseID,
		MaterialID:  in.MaterialID,
	})
	if err != nil {
		return nil, err
	}

	breaches := make([]dto.BreachResponse, 0, len(rows))
	for _, r := range rows {
		breaches = append(breaches, dto.BreachResponse{
			WarehouseID:    r.WarehouseID,
			MaterialID:     r.MaterialID,
			CurrentBalance: r.CurrentBalance,
			MinStock:       r.MinStock,
			Deficit:        r.MinStock.Sub(r.CurrentBalance),
		})
	}

	if in.SortByDeficit {
		sort.SliceStable(breaches, func(i, j int) bool {
			return breaches[i].Deficit.GreaterThan(breaches[j].Deficit)
		})
	}
	return breaches, nil
}
