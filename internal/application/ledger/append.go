package ledger

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// AppendMovementUseCase registra movimientos en el libro de forma transaccional.
// Un append valida los invariantes por tipo, resuelve referencias contra el
// registro, e inserta el movimiento junto con sus efectos sobre el resumen de
// saldos (SELECT FOR UPDATE por par) y la reconciliación de la orden de compra
// en una sola transacción: o queda todo, o no queda nada.
type AppendMovementUseCase struct {
	txRunner       TxRunner
	materialRepo   repository.MaterialRepository
	warehouseRepo  repository.WarehouseRepository
	supplierRepo   repository.SupplierRepository
	projectRepo    repository.ProjectRepository
	poRepo         repository.PurchaseOrderRepository
	movRepo        repository.MovementRepository
	forbidNegative bool
	log            *logger.Logger
}

// NewAppendMovementUseCase construye el caso de uso.
// forbidNegative activa el modo estricto: las salidas que dejarían saldo
// negativo fallan con domain.ErrInsufficientStock.
func NewAppendMovementUseCase(
	txRunner TxRunner,
	materialRepo repository.MaterialRepository,
	warehouseRepo repository.WarehouseRepository,
	supplierRepo repository.SupplierRepository,
	projectRepo repository.ProjectRepository,
	poRepo repository.PurchaseOrderRepository,
	movRepo repository.MovementRepository,
	forbidNegative bool,
	log *logger.Logger,
) *AppendMovementUseCase {
	return &AppendMovementUseCase{
		txRunner:       txRunner,
		materialRepo:   materialRepo,
		warehouseRepo:  warehouseRepo,
		supplierRepo:   supplierRepo,
		projectRepo:    projectRepo,
		poRepo:         poRepo,
		movRepo:        movRepo,
		forbidNegative: forbidNegative,
		log:            log,
	}
}

// AppendResult movimiento registrado más las anomalías no fatales detectadas.
type AppendResult struct {
	Movement  *entity.Movement
	Anomalies []domain.Anomaly
}

// Append valida, resuelve referencias y confirma el movimiento.
// Si el draft trae una clave de idempotencia ya registrada, devuelve el
// movimiento original sin duplicar nada.
func (uc *AppendMovementUseCase) Append(ctx context.Context, draft *entity.Movement) (*AppendResult, error) {
	if err := domain.ValidateMovement(draft); err != nil {
		return nil, err
	}
	if err := uc.checkReferences(ctx, draft); err != nil {
		return nil, err
	}

	// Clave de idempotencia: la del cliente o una generada. Reintentar un POST
	// con la misma clave devuelve el registro original.
	if draft.IdempotencyKey == nil || *draft.IdempotencyKey == "" {
		key := uuid.New().String()
		draft.IdempotencyKey = &key
	} else if existing, err := uc.movRepo.GetByIdempotencyKey(ctx, *draft.IdempotencyKey); err != nil {
		return nil, err
	} else if existing != nil {
		return &AppendResult{Movement: existing}, nil
	}

	result := &AppendResult{Movement: draft}
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		poRepo repository.PurchaseOrderRepository,
	) error {
		if err := movRepo.Create(ctx, draft); err != nil {
			return err
		}
		anomalies, err := uc.applyEffects(ctx, stockRepo, draft)
		if err != nil {
			return err
		}
		result.Anomalies = anomalies

		// RECEIPT contra una orden: reconciliar en la misma transacción para
		// que nadie vea el movimiento sin su estado de orden actualizado.
		if draft.Type == entity.MovementTypeRECEIPT && draft.PurchaseOrderID != nil {
			poAnomalies, err := reconcileOrder(ctx, movRepo, poRepo, *draft.PurchaseOrderID)
			if err != nil {
				return err
			}
			result.Anomalies = append(result.Anomalies, poAnomalies...)
		}
		return nil
	})
	if err != nil {
		// Carrera sobre la clave de idempotencia: otro worker insertó primero.
		if errors.Is(err, domain.ErrDuplicate) {
			if existing, lookupErr := uc.movRepo.GetByIdempotencyKey(ctx, *draft.IdempotencyKey); lookupErr == nil && existing != nil {
				return &AppendResult{Movement: existing}, nil
			}
		}
		return nil, err
	}

	for _, a := range result.Anomalies {
		uc.log.Warn().
			Int64("movement_id", draft.ID).
			Str("code", a.Code).
			Str("detail", a.Detail).
			Msg("anomalía registrada")
	}
	return result, nil
}

// Transfer registra un traslado entre bodegas: un solo movimiento TRANSFER
// cuyo doble efecto (resta en origen, suma en destino) se aplica en la misma
// transacción. Como ambos efectos salen del mismo registro, no existe ventana
// en la que solo un lado sea visible.
func (uc *AppendMovementUseCase) Transfer(ctx context.Context, draft *entity.Movement) (*AppendResult, error) {
	draft.Type = entity.MovementTypeTRANSFER
	return uc.Append(ctx, draft)
}

// applyEffects aplica las contribuciones con signo sobre la tabla resumen.
// Bloquea las filas en orden ascendente de bodega: dos traslados opuestos
// concurrentes adquieren los locks en el mismo orden y no se interbloquean.
func (uc *AppendMovementUseCase) applyEffects(
	ctx context.Context,
	stockRepo repository.StockRepository,
	m *entity.Movement,
) ([]domain.Anomaly, error) {
	effects := domain.MovementEffects(m)
	sort.Slice(effects, func(i, j int) bool { return effects[i].WarehouseID < effects[j].WarehouseID })

	var anomalies []domain.Anomaly
	now := time.Now()
	for _, eff := range effects {
		stock, err := stockRepo.GetForUpdate(ctx, eff.WarehouseID, m.MaterialID)
		if err != nil {
			return nil, err
		}
		newQty := stock.Quantity.Add(eff.Delta)
		if newQty.LessThan(decimal.Zero) {
			// El modo estricto solo frena ISSUE y TRANSFER: un ADJUST corrige
			// deriva de conteo y debe poder dejar saldo negativo, con anomalía.
			if uc.forbidNegative && m.Type != entity.MovementTypeADJUST {
				return nil, domain.ErrInsufficientStock
			}
			anomalies = append(anomalies, domain.Anomaly{
				Code:   domain.AnomalyNegativeBalance,
				Detail: "bodega " + strconv.FormatInt(eff.WarehouseID, 10) + ": saldo " + newQty.String(),
			})
		}
		stock.Quantity = newQty
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(ctx, stock); err != nil {
			return nil, err
		}
	}
	return anomalies, nil
}

// checkReferences valida las llaves foráneas contra el registro de referencia.
func (uc *AppendMovementUseCase) checkReferences(ctx context.Context, m *entity.Movement) error {
	material, err := uc.materialRepo.GetByID(ctx, m.MaterialID)
	if err != nil {
		return err
	}
	if material == nil {
		return domain.ErrReferenceNotFound
	}
	for _, whID := range []*int64{m.SourceWarehouseID, m.DestinationWarehouseID} {
		if whID == nil {
			continue
		}
		wh, err := uc.warehouseRepo.GetByID(ctx, *whID)
		if err != nil {
			return err
		}
		if wh == nil {
			return domain.ErrReferenceNotFound
		}
	}
	if m.SupplierID != nil {
		sup, err := uc.supplierRepo.GetByID(ctx, *m.SupplierID)
		if err != nil {
			return err
		}
		if sup == nil {
			return domain.ErrReferenceNotFound
		}
	}
	if m.ProjectID != nil {
		project, err := uc.projectRepo.GetByID(ctx, *m.ProjectID)
		if err != nil {
			return err
		}
		if project == nil {
			return domain.ErrReferenceNotFound
		}
	}
	if m.PurchaseOrderID != nil {
		po, err := uc.poRepo.GetByID(ctx, *m.PurchaseOrderID)
		if err != nil {
			return err
		}
		if po == nil {
			return domain.ErrReferenceNotFound
		}
	}
	return nil
}

// reconcileOrder recalcula el cumplimiento de la orden con los repos de la
// transacción en curso y persiste el estado derivado si cambió. Idempotente:
// reprocesar los mismos movimientos produce el mismo estado.
// La lectura bloquea la fila de la orden: si un Cancel gana la carrera, la
// derivación ve CANCELLED y lo respeta; si pierde, espera a que esta
// transacción confirme. CANCELLED nunca se pisa con un estado derivado.
func reconcileOrder(
	ctx context.Context,
	movRepo repository.MovementRepository,
	poRepo repository.PurchaseOrderRepository,
	poID int64,
) ([]domain.Anomaly, error) {
	po, err := poRepo.GetByIDForUpdate(ctx, poID)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrReferenceNotFound
	}
	items, err := poRepo.ListItems(ctx, poID)
	if err != nil {
		return nil, err
	}
	received, err := movRepo.SumReceiptsByOrder(ctx, poID)
	if err != nil {
		return nil, err
	}
	fulfillment, anomalies := domain.ReconcileItems(items, received)
	status := domain.DerivePOStatus(po.Status, fulfillment)
	if status != po.Status {
		if err := poRepo.UpdateStatus(ctx, poID, status); err != nil {
			return nil, err
		}
	}
	return anomalies, nil
}
