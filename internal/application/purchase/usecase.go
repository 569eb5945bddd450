package purchase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// PurchaseOrderUseCase gestiona órdenes de compra y su reconciliación contra
// las recepciones del libro. El estado nunca se fija a mano más allá de
// Place/Cancel: PARTIALLY_RECEIVED y RECEIVED se derivan de los movimientos.
type PurchaseOrderUseCase struct {
	poRepo        repository.PurchaseOrderRepository
	movRepo       repository.MovementRepository
	supplierRepo  repository.SupplierRepository
	warehouseRepo repository.WarehouseRepository
	materialRepo  repository.MaterialRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	poRepo repository.PurchaseOrderRepository,
	movRepo repository.MovementRepository,
	supplierRepo repository.SupplierRepository,
	warehouseRepo repository.WarehouseRepository,
	materialRepo repository.MaterialRepository,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		poRepo:        poRepo,
		movRepo:       movRepo,
		supplierRepo:  supplierRepo,
		warehouseRepo: warehouseRepo,
		materialRepo:  materialRepo,
	}
}

// Create crea una orden en DRAFT tras validar proveedor y bodega.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	orderDate, err := parseDate(in.OrderDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var expected *time.Time
	if in.ExpectedDate != "" {
		d, err := parseDate(in.ExpectedDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expected = &d
	}

	sup, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	wh, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if sup == nil || wh == nil {
		return nil, domain.ErrReferenceNotFound
	}

	po := &entity.PurchaseOrder{
		SupplierID:   in.SupplierID,
		WarehouseID:  in.WarehouseID,
		OrderDate:    orderDate,
		ExpectedDate: expected,
		Status:       entity.POStatusDRAFT,
	}
	if err := uc.poRepo.Create(ctx, po); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, po)
}

// AddItem agrega una posición (única por material) a una orden en DRAFT u ORDERED.
func (uc *PurchaseOrderUseCase) AddItem(ctx context.Context, poID int64, in dto.CreatePOItemRequest) (*dto.POItemResponse, error) {
	if !in.QtyOrdered.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	po, err := uc.poRepo.GetByID(ctx, poID)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	if po.Status != entity.POStatusDRAFT && po.Status != entity.POStatusORDERED {
		return nil, domain.ErrConflict
	}
	material, err := uc.materialRepo.GetByID(ctx, in.MaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrReferenceNotFound
	}

	item := &entity.POItem{
		POID:       poID,
		MaterialID: in.MaterialID,
		QtyOrdered: in.QtyOrdered,
		UnitPrice:  in.UnitPrice,
		Currency:   in.Currency,
	}
	if err := uc.poRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return &dto.POItemResponse{
		ID:          item.ID,
		MaterialID:  item.MaterialID,
		QtyOrdered:  item.QtyOrdered,
		QtyReceived: decimal.Zero,
		UnitPrice:   item.UnitPrice,
		Currency:    item.Currency,
	}, nil
}

// Get devuelve la orden con estado derivado y cumplimiento por posición.
func (uc *PurchaseOrderUseCase) Get(ctx context.Context, poID int64) (*dto.PurchaseOrderResponse, error) {
	po, err := uc.poRepo.GetByID(ctx, poID)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(ctx, po)
}

// List lista órdenes paginadas (solo encabezados).
func (uc *PurchaseOrderUseCase) List(ctx context.Context, limit, offset int) (*dto.PurchaseOrderListResponse, error) {
	list, err := uc.poRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderSummary, 0, len(list))
	for _, po := range list {
		items = append(items, dto.PurchaseOrderSummary{
			ID:          po.ID,
			SupplierID:  po.SupplierID,
			WarehouseID: po.WarehouseID,
			OrderDate:   po.OrderDate.Format("2006-01-02"),
			Status:      po.Status,
		})
	}
	return &dto.PurchaseOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Place pasa la orden de DRAFT a ORDERED (colocada ante el proveedor).
func (uc *PurchaseOrderUseCase) Place(ctx context.Context, poID int64) error {
	po, err := uc.poRepo.GetByID(ctx, poID)
	if err != nil {
		return err
	}
	if po == nil {
		return domain.ErrNotFound
	}
	if po.Status != entity.POStatusDRAFT {
		return domain.ErrConflict
	}
	return uc.poRepo.UpdateStatus(ctx, poID, entity.POStatusORDERED)
}

// Cancel cancela la orden. Solo desde DRAFT u ORDERED; nunca automático.
func (uc *PurchaseOrderUseCase) Cancel(ctx context.Context, poID int64) error {
	po, err := uc.poRepo.GetByID(ctx, poID)
	if err != nil {
		return err
	}
	if po == nil {
		return domain.ErrNotFound
	}
	if po.Status != entity.POStatusDRAFT && po.Status != entity.POStatusORDERED {
		return domain.ErrConflict
	}
	return uc.poRepo.UpdateStatus(ctx, poID, entity.POStatusCANCELLED)
}

// Delete borra una orden en DRAFT con sus posiciones (cascada explícita de la
// relación de pertenencia). Con cualquier otro estado se rechaza.
func (uc *PurchaseOrderUseCase) Delete(ctx context.Context, poID int64) error {
	po, err := uc.poRepo.GetByID(ctx, poID)
	if err != nil {
		return err
	}
	if po == nil {
		return domain.ErrNotFound
	}
	if po.Status != entity.POStatusDRAFT {
		return domain.ErrConflict
	}
	return uc.poRepo.Delete(ctx, poID)
}

// toResponse arma la respuesta con el cumplimiento derivado de los movimientos
// y la última cotización del proveedor como referencia de precio por posición.
func (uc *PurchaseOrderUseCase) toResponse(ctx context.Context, po *entity.PurchaseOrder) (*dto.PurchaseOrderResponse, error) {
	items, err := uc.poRepo.ListItems(ctx, po.ID)
	if err != nil {
		return nil, err
	}
	received, err := uc.movRepo.SumReceiptsByOrder(ctx, po.ID)
	if err != nil {
		return nil, err
	}
	fulfillment, anomalies := domain.ReconcileItems(items, received)
	status := domain.DerivePOStatus(po.Status, fulfillment)

	receivedByMaterial := make(map[int64]decimal.Decimal, len(fulfillment))
	for _, f := range fulfillment {
		receivedByMaterial[f.MaterialID] = f.Received
	}

	itemDTOs := make([]dto.POItemResponse, 0, len(items))
	for _, it := range items {
		itemDTO := dto.POItemResponse{
			ID:          it.ID,
			MaterialID:  it.MaterialID,
			QtyOrdered:  it.QtyOrdered,
			QtyReceived: receivedByMaterial[it.MaterialID],
			UnitPrice:   it.UnitPrice,
			Currency:    it.Currency,
		}
		if quote, err := uc.supplierRepo.LatestPrice(ctx, po.SupplierID, it.MaterialID); err == nil && quote != nil {
			itemDTO.LatestQuote = &quote.Price
		}
		itemDTOs = append(itemDTOs, itemDTO)
	}

	resp := &dto.PurchaseOrderResponse{
		ID:          po.ID,
		SupplierID:  po.SupplierID,
		WarehouseID: po.WarehouseID,
		OrderDate:   po.OrderDate.Format("2006-01-02"),
		Status:      status,
		Items:       itemDTOs,
		Anomalies:   anomalies,
	}
	if po.ExpectedDate != nil {
		resp.ExpectedDate = po.ExpectedDate.Format("2006-01-02")
	}
	return resp, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
