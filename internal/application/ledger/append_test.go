package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore simula la base: libro, resumen de saldos, órdenes y registro.
// El TxRunner falso ejecuta el callback directamente; la atomicidad real la
// cubren los tests de integración contra PostgreSQL.
type memStore struct {
	movements  []*entity.Movement
	nextMoveID int64
	stock      map[[2]int64]decimal.Decimal // (warehouse, material) -> qty
	orders     map[int64]*entity.PurchaseOrder
	items      map[int64][]*entity.POItem
	materials  map[int64]*entity.Material
	warehouses map[int64]*entity.Warehouse
	suppliers  map[int64]*entity.Supplier
	projects   map[int64]*entity.Project
}

func newMemStore() *memStore {
	return &memStore{
		nextMoveID: 1,
		stock:      make(map[[2]int64]decimal.Decimal),
		orders:     make(map[int64]*entity.PurchaseOrder),
		items:      make(map[int64][]*entity.POItem),
		materials:  make(map[int64]*entity.Material),
		warehouses: make(map[int64]*entity.Warehouse),
		suppliers:  make(map[int64]*entity.Supplier),
		projects:   make(map[int64]*entity.Project),
	}
}

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	if m.IdempotencyKey != nil {
		for _, existing := range r.s.movements {
			if existing.IdempotencyKey != nil && *existing.IdempotencyKey == *m.IdempotencyKey {
				return domain.ErrDuplicate
			}
		}
	}
	m.ID = r.s.nextMoveID
	r.s.nextMoveID++
	m.CreatedAt = time.Now()
	r.s.movements = append(r.s.movements, m)
	return nil
}

func (r *memMovementRepo) GetByID(_ context.Context, id int64) (*entity.Movement, error) {
	for _, m := range r.s.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) GetByIdempotencyKey(_ context.Context, key string) (*entity.Movement, error) {
	for _, m := range r.s.movements {
		if m.IdempotencyKey != nil && *m.IdempotencyKey == key {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) ListSince(_ context.Context, cursor int64, limit int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if m.ID > cursor && len(out) < limit {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMovementRepo) SumReceiptsByOrder(_ context.Context, poID int64) (map[int64]decimal.Decimal, error) {
	out := make(map[int64]decimal.Decimal)
	for _, m := range r.s.movements {
		if m.Type == entity.MovementTypeRECEIPT && m.PurchaseOrderID != nil && *m.PurchaseOrderID == poID {
			out[m.MaterialID] = out[m.MaterialID].Add(m.Quantity)
		}
	}
	return out, nil
}

func (r *memMovementRepo) SignedSum(_ context.Context, warehouseID, materialID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, m := range r.s.movements {
		if m.MaterialID != materialID {
			continue
		}
		for _, eff := range domain.MovementEffects(m) {
			if eff.WarehouseID == warehouseID {
				sum = sum.Add(eff.Delta)
			}
		}
	}
	return sum, nil
}

func (r *memMovementRepo) ExistsBySupplier(_ context.Context, supplierID int64) (bool, error) {
	for _, m := range r.s.movements {
		if m.SupplierID != nil && *m.SupplierID == supplierID {
			return true, nil
		}
	}
	return false, nil
}

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) Get(_ context.Context, warehouseID, materialID int64) (*entity.Stock, error) {
	return &entity.Stock{
		WarehouseID: warehouseID,
		MaterialID:  materialID,
		Quantity:    r.s.stock[[2]int64{warehouseID, materialID}],
	}, nil
}

func (r *memStockRepo) GetForUpdate(ctx context.Context, warehouseID, materialID int64) (*entity.Stock, error) {
	return r.Get(ctx, warehouseID, materialID)
}

func (r *memStockRepo) Upsert(_ context.Context, stock *entity.Stock) error {
	r.s.stock[[2]int64{stock.WarehouseID, stock.MaterialID}] = stock.Quantity
	return nil
}

type memPORepo struct{ s *memStore }

func (r *memPORepo) Create(_ context.Context, po *entity.PurchaseOrder) error {
	po.ID = int64(len(r.s.orders) + 1)
	po.CreatedAt = time.Now()
	r.s.orders[po.ID] = po
	return nil
}

func (r *memPORepo) GetByID(_ context.Context, id int64) (*entity.PurchaseOrder, error) {
	return r.s.orders[id], nil
}

func (r *memPORepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.PurchaseOrder, error) {
	return r.GetByID(ctx, id)
}

func (r *memPORepo) List(_ context.Context, _, _ int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, po := range r.s.orders {
		out = append(out, po)
	}
	return out, nil
}

func (r *memPORepo) UpdateStatus(_ context.Context, id int64, status string) error {
	r.s.orders[id].Status = status
	return nil
}

func (r *memPORepo) Delete(_ context.Context, id int64) error {
	delete(r.s.orders, id)
	delete(r.s.items, id)
	return nil
}

func (r *memPORepo) CreateItem(_ context.Context, item *entity.POItem) error {
	item.ID = int64(len(r.s.items[item.POID]) + 1)
	r.s.items[item.POID] = append(r.s.items[item.POID], item)
	return nil
}

func (r *memPORepo) ListItems(_ context.Context, poID int64) ([]*entity.POItem, error) {
	return r.s.items[poID], nil
}

func (r *memPORepo) ExistsBySupplier(_ context.Context, supplierID int64) (bool, error) {
	for _, po := range r.s.orders {
		if po.SupplierID == supplierID {
			return true, nil
		}
	}
	return false, nil
}

type memMaterialRepo struct{ s *memStore }

func (r *memMaterialRepo) Create(_ context.Context, m *entity.Material) error {
	m.ID = int64(len(r.s.materials) + 1)
	r.s.materials[m.ID] = m
	return nil
}
func (r *memMaterialRepo) GetByID(_ context.Context, id int64) (*entity.Material, error) {
	return r.s.materials[id], nil
}
func (r *memMaterialRepo) GetBySKU(_ context.Context, sku string) (*entity.Material, error) {
	for _, m := range r.s.materials {
		if m.SKU == sku {
			return m, nil
		}
	}
	return nil, nil
}
func (r *memMaterialRepo) List(_ context.Context, _, _ int) ([]*entity.Material, error) {
	return nil, nil
}

type memWarehouseRepo struct{ s *memStore }

func (r *memWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	w.ID = int64(len(r.s.warehouses) + 1)
	r.s.warehouses[w.ID] = w
	return nil
}
func (r *memWarehouseRepo) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	return r.s.warehouses[id], nil
}
func (r *memWarehouseRepo) List(_ context.Context, _, _ int) ([]*entity.Warehouse, error) {
	return nil, nil
}

type memProjectRepo struct{ s *memStore }

func (r *memProjectRepo) Create(_ context.Context, p *entity.Project) error {
	p.ID = int64(len(r.s.projects) + 1)
	r.s.projects[p.ID] = p
	return nil
}
func (r *memProjectRepo) GetByID(_ context.Context, id int64) (*entity.Project, error) {
	return r.s.projects[id], nil
}
func (r *memProjectRepo) List(_ context.Context) ([]*entity.Project, error) { return nil, nil }

type memSupplierRepo struct{ s *memStore }

func (r *memSupplierRepo) Create(_ context.Context, sup *entity.Supplier) error {
	sup.ID = int64(len(r.s.suppliers) + 1)
	r.s.suppliers[sup.ID] = sup
	return nil
}
func (r *memSupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	return r.s.suppliers[id], nil
}
func (r *memSupplierRepo) List(_ context.Context, _, _ int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (r *memSupplierRepo) CreateMaterialLink(_ context.Context, _ *entity.SupplierMaterial) error {
	return nil
}
func (r *memSupplierRepo) ListMaterialLinks(_ context.Context, _ int64) ([]*entity.SupplierMaterial, error) {
	return nil, nil
}
func (r *memSupplierRepo) CreatePrice(_ context.Context, _ *entity.SupplierMaterialPrice) error {
	return nil
}
func (r *memSupplierRepo) ListPrices(_ context.Context, _, _ int64) ([]*entity.SupplierMaterialPrice, error) {
	return nil, nil
}
func (r *memSupplierRepo) LatestPrice(_ context.Context, _, _ int64) (*entity.SupplierMaterialPrice, error) {
	return nil, nil
}
func (r *memSupplierRepo) DeleteMaterialLinks(_ context.Context, _ int64) error { return nil }
func (r *memSupplierRepo) DeletePrices(_ context.Context, _ int64) error        { return nil }
func (r *memSupplierRepo) Delete(_ context.Context, id int64) error {
	delete(r.s.suppliers, id)
	return nil
}

type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	poRepo repository.PurchaseOrderRepository,
) error) error {
	return fn(&memMovementRepo{s: r.s}, &memStockRepo{s: r.s}, &memPORepo{s: r.s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store    *memStore
	appendUC *ledger.AppendMovementUseCase
	queryUC  *ledger.QueryUseCase
}

func newFixture(t *testing.T, forbidNegative bool) *fixture {
	t.Helper()
	store := newMemStore()
	materialRepo := &memMaterialRepo{s: store}
	warehouseRepo := &memWarehouseRepo{s: store}
	supplierRepo := &memSupplierRepo{s: store}
	projectRepo := &memProjectRepo{s: store}
	poRepo := &memPORepo{s: store}
	movRepo := &memMovementRepo{s: store}
	stockRepo := &memStockRepo{s: store}

	ctx := context.Background()
	require.NoError(t, materialRepo.Create(ctx, &entity.Material{SKU: "VAR-12", Name: "Varilla"}))
	require.NoError(t, warehouseRepo.Create(ctx, &entity.Warehouse{Name: "Central"}))
	require.NoError(t, warehouseRepo.Create(ctx, &entity.Warehouse{Name: "Obra"}))
	require.NoError(t, supplierRepo.Create(ctx, &entity.Supplier{Name: "Aceros"}))
	require.NoError(t, projectRepo.Create(ctx, &entity.Project{Code: "TOR-NORTE", Name: "Torre Norte"}))

	return &fixture{
		store: store,
		appendUC: ledger.NewAppendMovementUseCase(
			&memTxRunner{s: store}, materialRepo, warehouseRepo, supplierRepo, projectRepo, poRepo, movRepo,
			forbidNegative, logger.Nop(),
		),
		queryUC: ledger.NewQueryUseCase(movRepo, stockRepo),
	}
}

func ptr(v int64) *int64 { return &v }

func receipt(qty int64, warehouse int64) *entity.Movement {
	return &entity.Movement{
		Type:                   entity.MovementTypeRECEIPT,
		MaterialID:             1,
		Quantity:               decimal.NewFromInt(qty),
		OccurredAt:             time.Now(),
		DestinationWarehouseID: ptr(warehouse),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Escenario completo: recepción, traslado y ajuste, verificando los saldos
// derivados después de cada paso.
func TestAppend_FlujoRecepcionTrasladoAjuste(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	// Recepción de 500 en la bodega central.
	res, err := f.appendUC.Append(ctx, receipt(500, 1))
	require.NoError(t, err)
	assert.Empty(t, res.Anomalies)

	qty, err := f.queryUC.BalanceOf(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, qty.Equal(decimal.NewFromInt(500)), "saldo central: %s", qty)

	// Traslado de 200 a la bodega de obra.
	_, err = f.appendUC.Transfer(ctx, &entity.Movement{
		MaterialID:             1,
		Quantity:               decimal.NewFromInt(200),
		OccurredAt:             time.Now(),
		SourceWarehouseID:      ptr(1),
		DestinationWarehouseID: ptr(2),
	})
	require.NoError(t, err)

	qty, _ = f.queryUC.BalanceOf(ctx, 1, 1)
	assert.True(t, qty.Equal(decimal.NewFromInt(300)))
	qty, _ = f.queryUC.BalanceOf(ctx, 2, 1)
	assert.True(t, qty.Equal(decimal.NewFromInt(200)))

	// Ajuste por merma: -50 en obra.
	_, err = f.appendUC.Append(ctx, &entity.Movement{
		Type:              entity.MovementTypeADJUST,
		MaterialID:        1,
		Quantity:          decimal.NewFromInt(50),
		Direction:         entity.AdjustDirectionOUT,
		OccurredAt:        time.Now(),
		SourceWarehouseID: ptr(2),
	})
	require.NoError(t, err)

	qty, _ = f.queryUC.BalanceOf(ctx, 2, 1)
	assert.True(t, qty.Equal(decimal.NewFromInt(150)))

	// El recálculo por barrido del libro coincide con el resumen.
	for _, wh := range []int64{1, 2} {
		summary, err := f.queryUC.BalanceOf(ctx, wh, 1)
		require.NoError(t, err)
		replayed, err := f.queryUC.RecomputeBalance(ctx, wh, 1)
		require.NoError(t, err)
		assert.True(t, summary.Equal(replayed), "bodega %d: resumen %s vs replay %s", wh, summary, replayed)
	}
}

func TestAppend_TransferEsUnSoloMovimiento(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.appendUC.Append(ctx, receipt(300, 1))
	require.NoError(t, err)

	res, err := f.appendUC.Transfer(ctx, &entity.Movement{
		MaterialID:             1,
		Quantity:               decimal.NewFromInt(100),
		OccurredAt:             time.Now(),
		SourceWarehouseID:      ptr(1),
		DestinationWarehouseID: ptr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeTRANSFER, res.Movement.Type)

	// Un registro en el libro, dos efectos en los saldos.
	assert.Len(t, f.store.movements, 2)
}

func TestAppend_TransferMismaBodega(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.appendUC.Transfer(context.Background(), &entity.Movement{
		MaterialID:             1,
		Quantity:               decimal.NewFromInt(10),
		OccurredAt:             time.Now(),
		SourceWarehouseID:      ptr(1),
		DestinationWarehouseID: ptr(1),
	})
	assert.ErrorIs(t, err, domain.ErrSameWarehouse)
	assert.Empty(t, f.store.movements)
}

func TestAppend_ReferenciaInexistente(t *testing.T) {
	f := newFixture(t, false)

	m := receipt(10, 1)
	m.MaterialID = 99
	_, err := f.appendUC.Append(context.Background(), m)
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)

	m = receipt(10, 99)
	_, err = f.appendUC.Append(context.Background(), m)
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)

	m = receipt(10, 1)
	m.ProjectID = ptr(99)
	_, err = f.appendUC.Append(context.Background(), m)
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
}

// Los metadatos de la remisión (conductor, obra imputada) viajan con el
// movimiento y vuelven intactos en la lectura.
func TestAppend_MetadatosDeRemision(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	m := receipt(100, 1)
	m.ProjectID = ptr(1)
	m.DriverName = "J. Pardo"
	m.VehicleNumber = "WXZ-481"
	res, err := f.appendUC.Append(ctx, m)
	require.NoError(t, err)

	page, err := f.queryUC.ListSince(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, res.Movement.ID, page[0].ID)
	assert.Equal(t, "J. Pardo", page[0].DriverName)
	require.NotNil(t, page[0].ProjectID)
	assert.Equal(t, int64(1), *page[0].ProjectID)
}

// En modo laxo las salidas pueden dejar saldo negativo: el movimiento se acepta
// y la anomalía queda en la respuesta.
func TestAppend_SaldoNegativoComoAnomalia(t *testing.T) {
	f := newFixture(t, false)

	res, err := f.appendUC.Append(context.Background(), &entity.Movement{
		Type:              entity.MovementTypeISSUE,
		MaterialID:        1,
		Quantity:          decimal.NewFromInt(30),
		OccurredAt:        time.Now(),
		SourceWarehouseID: ptr(1),
	})
	require.NoError(t, err)
	require.Len(t, res.Anomalies, 1)
	assert.Equal(t, domain.AnomalyNegativeBalance, res.Anomalies[0].Code)

	qty, _ := f.queryUC.BalanceOf(context.Background(), 1, 1)
	assert.True(t, qty.Equal(decimal.NewFromInt(-30)))
}

// En modo estricto la misma salida se rechaza y el libro queda intacto.
func TestAppend_ModoEstrictoRechazaSaldoNegativo(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	_, err := f.appendUC.Append(ctx, receipt(20, 1))
	require.NoError(t, err)

	_, err = f.appendUC.Append(ctx, &entity.Movement{
		Type:              entity.MovementTypeISSUE,
		MaterialID:        1,
		Quantity:          decimal.NewFromInt(30),
		OccurredAt:        time.Now(),
		SourceWarehouseID: ptr(1),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	qty, _ := f.queryUC.BalanceOf(ctx, 1, 1)
	assert.True(t, qty.Equal(decimal.NewFromInt(20)))
}

// El modo estricto solo aplica a salidas operativas: un ajuste por conteo
// puede dejar saldo negativo incluso en modo estricto, con su anomalía.
func TestAppend_ModoEstrictoPermiteAjusteNegativo(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	_, err := f.appendUC.Append(ctx, receipt(20, 1))
	require.NoError(t, err)

	res, err := f.appendUC.Append(ctx, &entity.Movement{
		Type:              entity.MovementTypeADJUST,
		MaterialID:        1,
		Quantity:          decimal.NewFromInt(30),
		Direction:         entity.AdjustDirectionOUT,
		OccurredAt:        time.Now(),
		SourceWarehouseID: ptr(1),
	})
	require.NoError(t, err)
	require.Len(t, res.Anomalies, 1)
	assert.Equal(t, domain.AnomalyNegativeBalance, res.Anomalies[0].Code)

	qty, _ := f.queryUC.BalanceOf(ctx, 1, 1)
	assert.True(t, qty.Equal(decimal.NewFromInt(-10)))
}

// Reintentar con la misma clave devuelve el movimiento original sin duplicar
// efectos sobre los saldos.
func TestAppend_IdempotenciaPorClave(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	key := "retry-abc-123"
	m1 := receipt(100, 1)
	m1.IdempotencyKey = &key
	first, err := f.appendUC.Append(ctx, m1)
	require.NoError(t, err)

	m2 := receipt(100, 1)
	m2.IdempotencyKey = &key
	second, err := f.appendUC.Append(ctx, m2)
	require.NoError(t, err)

	assert.Equal(t, first.Movement.ID, second.Movement.ID)
	assert.Len(t, f.store.movements, 1)

	qty, _ := f.queryUC.BalanceOf(ctx, 1, 1)
	assert.True(t, qty.Equal(decimal.NewFromInt(100)))
}

// Una recepción contra una orden reconcilia el estado en el mismo append.
func TestAppend_RecepcionReconciliaOrden(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	poRepo := &memPORepo{s: f.store}
	po := &entity.PurchaseOrder{SupplierID: 1, WarehouseID: 1, OrderDate: time.Now(), Status: entity.POStatusORDERED}
	require.NoError(t, poRepo.Create(ctx, po))
	require.NoError(t, poRepo.CreateItem(ctx, &entity.POItem{POID: po.ID, MaterialID: 1, QtyOrdered: decimal.NewFromInt(500)}))

	// Recepción parcial.
	m := receipt(200, 1)
	m.SupplierID = ptr(1)
	m.PurchaseOrderID = &po.ID
	res, err := f.appendUC.Append(ctx, m)
	require.NoError(t, err)
	assert.Empty(t, res.Anomalies)
	assert.Equal(t, entity.POStatusPartiallyReceived, f.store.orders[po.ID].Status)

	// Completa la orden con sobre-recepción: RECEIVED más anomalía.
	m = receipt(350, 1)
	m.SupplierID = ptr(1)
	m.PurchaseOrderID = &po.ID
	res, err = f.appendUC.Append(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusRECEIVED, f.store.orders[po.ID].Status)
	require.Len(t, res.Anomalies, 1)
	assert.Equal(t, domain.AnomalyOverReceipt, res.Anomalies[0].Code)
}

// CANCELLED es terminal: una recepción tardía contra una orden cancelada
// registra el movimiento y sus efectos, pero la derivación nunca pisa el
// estado fijado por el operador.
func TestAppend_RecepcionNoResucitaOrdenCancelada(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	poRepo := &memPORepo{s: f.store}
	po := &entity.PurchaseOrder{SupplierID: 1, WarehouseID: 1, OrderDate: time.Now(), Status: entity.POStatusORDERED}
	require.NoError(t, poRepo.Create(ctx, po))
	require.NoError(t, poRepo.CreateItem(ctx, &entity.POItem{POID: po.ID, MaterialID: 1, QtyOrdered: decimal.NewFromInt(500)}))
	require.NoError(t, poRepo.UpdateStatus(ctx, po.ID, entity.POStatusCANCELLED))

	m := receipt(200, 1)
	m.SupplierID = ptr(1)
	m.PurchaseOrderID = &po.ID
	_, err := f.appendUC.Append(ctx, m)
	require.NoError(t, err)

	assert.Equal(t, entity.POStatusCANCELLED, f.store.orders[po.ID].Status)
	qty, _ := f.queryUC.BalanceOf(ctx, 1, 1)
	assert.True(t, qty.Equal(decimal.NewFromInt(200)))
}

func TestListSince_FeedPorCursor(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := f.appendUC.Append(ctx, receipt(10, 1))
		require.NoError(t, err)
	}

	page, err := f.queryUC.ListSince(ctx, 0, 3)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, int64(1), page[0].ID)

	rest, err := f.queryUC.ListSince(ctx, page[2].ID, 10)
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, int64(4), rest[0].ID)
}
