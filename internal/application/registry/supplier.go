package registry

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// SupplierTxRunner ejecuta la cascada de borrado del proveedor dentro de una
// transacción: surtido y precios se borran en orden junto con el proveedor.
type SupplierTxRunner interface {
	RunSupplier(ctx context.Context, fn func(repo repository.SupplierRepository) error) error
}

// SupplierUseCase CRUD de proveedores, su surtido y su historial de precios.
type SupplierUseCase struct {
	repo         repository.SupplierRepository
	materialRepo repository.MaterialRepository
	movRepo      repository.MovementRepository
	poRepo       repository.PurchaseOrderRepository
	txRunner     SupplierTxRunner
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(
	repo repository.SupplierRepository,
	materialRepo repository.MaterialRepository,
	movRepo repository.MovementRepository,
	poRepo repository.PurchaseOrderRepository,
	txRunner SupplierTxRunner,
) *SupplierUseCase {
	return &SupplierUseCase{
		repo:         repo,
		materialRepo: materialRepo,
		movRepo:      movRepo,
		poRepo:       poRepo,
		txRunner:     txRunner,
	}
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{Name: in.Name, Phone: in.Phone, Email: in.Email, TaxID: in.TaxID}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(ctx context.Context, limit, offset int) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

// AddMaterial registra un material en el surtido del proveedor (único por par).
func (uc *SupplierUseCase) AddMaterial(ctx context.Context, supplierID int64, in dto.CreateSupplierMaterialRequest) (*dto.SupplierMaterialResponse, error) {
	if err := uc.checkPair(ctx, supplierID, in.MaterialID); err != nil {
		return nil, err
	}
	link := &entity.SupplierMaterial{
		SupplierID:   supplierID,
		MaterialID:   in.MaterialID,
		LeadTimeDays: in.LeadTimeDays,
		MinOrderQty:  in.MinOrderQty,
		Currency:     in.Currency,
	}
	if err := uc.repo.CreateMaterialLink(ctx, link); err != nil {
		return nil, err
	}
	return &dto.SupplierMaterialResponse{
		ID:           link.ID,
		SupplierID:   link.SupplierID,
		MaterialID:   link.MaterialID,
		LeadTimeDays: link.LeadTimeDays,
		MinOrderQty:  link.MinOrderQty,
		Currency:     link.Currency,
	}, nil
}

// ListMaterials lista el surtido de un proveedor.
func (uc *SupplierUseCase) ListMaterials(ctx context.Context, supplierID int64) ([]dto.SupplierMaterialResponse, error) {
	list, err := uc.repo.ListMaterialLinks(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierMaterialResponse, 0, len(list))
	for _, l := range list {
		out = append(out, dto.SupplierMaterialResponse{
			ID:           l.ID,
			SupplierID:   l.SupplierID,
			MaterialID:   l.MaterialID,
			LeadTimeDays: l.LeadTimeDays,
			MinOrderQty:  l.MinOrderQty,
			Currency:     l.Currency,
		})
	}
	return out, nil
}

// AddPrice registra una cotización fechada (única por proveedor, material y fecha).
func (uc *SupplierUseCase) AddPrice(ctx context.Context, supplierID int64, in dto.CreateSupplierPriceRequest) (*dto.SupplierPriceResponse, error) {
	priceDate, err := time.Parse("2006-01-02", in.PriceDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkPair(ctx, supplierID, in.MaterialID); err != nil {
		return nil, err
	}
	price := &entity.SupplierMaterialPrice{
		SupplierID: supplierID,
		MaterialID: in.MaterialID,
		Price:      in.Price,
		Currency:   in.Currency,
		PriceDate:  priceDate,
	}
	if err := uc.repo.CreatePrice(ctx, price); err != nil {
		return nil, err
	}
	return toSupplierPriceResponse(price), nil
}

// ListPrices lista el historial de cotizaciones de un proveedor para un material.
func (uc *SupplierUseCase) ListPrices(ctx context.Context, supplierID, materialID int64) ([]dto.SupplierPriceResponse, error) {
	list, err := uc.repo.ListPrices(ctx, supplierID, materialID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierPriceResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toSupplierPriceResponse(p))
	}
	return out, nil
}

// Delete borra el proveedor con cascada explícita sobre surtido y precios.
// Si movimientos u órdenes lo referencian, se rechaza: el historial del libro
// no puede quedar con llaves colgando.
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	if used, err := uc.movRepo.ExistsBySupplier(ctx, id); err != nil {
		return err
	} else if used {
		return domain.ErrConflict
	}
	if used, err := uc.poRepo.ExistsBySupplier(ctx, id); err != nil {
		return err
	} else if used {
		return domain.ErrConflict
	}

	return uc.txRunner.RunSupplier(ctx, func(repo repository.SupplierRepository) error {
		if err := repo.DeletePrices(ctx, id); err != nil {
			return err
		}
		if err := repo.DeleteMaterialLinks(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}

func (uc *SupplierUseCase) checkPair(ctx context.Context, supplierID, materialID int64) error {
	supplier, err := uc.repo.GetByID(ctx, supplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	material, err := uc.materialRepo.GetByID(ctx, materialID)
	if err != nil {
		return err
	}
	if material == nil {
		return domain.ErrReferenceNotFound
	}
	return nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{ID: s.ID, Name: s.Name, Phone: s.Phone, Email: s.Email, TaxID: s.TaxID}
}

func toSupplierPriceResponse(p *entity.SupplierMaterialPrice) *dto.SupplierPriceResponse {
	return &dto.SupplierPriceResponse{
		ID:         p.ID,
		SupplierID: p.SupplierID,
		MaterialID: p.MaterialID,
		Price:      p.Price,
		Currency:   p.Currency,
		PriceDate:  p.PriceDate.Format("2006-01-02"),
	}
}
