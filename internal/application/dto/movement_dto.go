package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// RegisterMovementRequest cuerpo del POST /api/movements.
// Las fechas van como "2006-01-02". Para ADJUST la cantidad es positiva y el
// signo lo da direction (IN/OUT).
type RegisterMovementRequest struct {
	Type                   string           `json:"type"`
	MaterialID             int64            `json:"material_id"`
	Quantity               decimal.Decimal  `json:"quantity"`
	Direction              string           `json:"direction,omitempty"`
	OccurredAt             string           `json:"occurred_at"`
	SourceWarehouseID      *int64           `json:"source_warehouse_id,omitempty"`
	DestinationWarehouseID *int64           `json:"destination_warehouse_id,omitempty"`
	SupplierID             *int64           `json:"supplier_id,omitempty"`
	PurchaseOrderID        *int64           `json:"purchase_order_id,omitempty"`
	ProjectID              *int64           `json:"project_id,omitempty"`
	UnitPrice              *decimal.Decimal `json:"unit_price,omitempty"`

	ExtDocNo       string `json:"ext_doc_no,omitempty"`
	ExtDocDate     string `json:"ext_doc_date,omitempty"`
	VehicleNumber  string `json:"vehicle_number,omitempty"`
	DriverName     string `json:"driver_name,omitempty"`
	ShippedByName  string `json:"shipped_by_name,omitempty"`
	AcceptedByName string `json:"accepted_by_name,omitempty"`
	ShipDate       string `json:"ship_date,omitempty"`
	LoadDate       string `json:"load_date,omitempty"`

	FileURL  string `json:"file_url,omitempty"`
	FileMIME string `json:"file_mime,omitempty"`
	FileHash string `json:"file_hash,omitempty"`

	// Opcional: reintentos con la misma clave devuelven el movimiento original.
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// TransferRequest cuerpo del POST /api/movements/transfer.
type TransferRequest struct {
	MaterialID             int64           `json:"material_id"`
	SourceWarehouseID      int64           `json:"source_warehouse_id"`
	DestinationWarehouseID int64           `json:"destination_warehouse_id"`
	Quantity               decimal.Decimal `json:"quantity"`
	OccurredAt             string          `json:"occurred_at"`
	ExtDocNo               string          `json:"ext_doc_no,omitempty"`
	VehicleNumber          string          `json:"vehicle_number,omitempty"`
	ShippedByName          string          `json:"shipped_by_name,omitempty"`
	AcceptedByName         string          `json:"accepted_by_name,omitempty"`
	IdempotencyKey         string          `json:"idempotency_key,omitempty"`
}

// MovementResponse representación JSON de un movimiento registrado.
type MovementResponse struct {
	ID                     int64            `json:"id"`
	Type                   string           `json:"type"`
	MaterialID             int64            `json:"material_id"`
	Quantity               decimal.Decimal  `json:"quantity"`
	Direction              string           `json:"direction,omitempty"`
	OccurredAt             string           `json:"occurred_at"`
	SourceWarehouseID      *int64           `json:"source_warehouse_id,omitempty"`
	DestinationWarehouseID *int64           `json:"destination_warehouse_id,omitempty"`
	SupplierID             *int64           `json:"supplier_id,omitempty"`
	PurchaseOrderID        *int64           `json:"purchase_order_id,omitempty"`
	ProjectID              *int64           `json:"project_id,omitempty"`
	UnitPrice              *decimal.Decimal `json:"unit_price,omitempty"`
	ExtDocNo               string           `json:"ext_doc_no,omitempty"`
	VehicleNumber          string           `json:"vehicle_number,omitempty"`
	DriverName             string           `json:"driver_name,omitempty"`
	FileURL                string           `json:"file_url,omitempty"`
	CreatedAt              time.Time        `json:"created_at"`
}

// RegisterMovementResponse movimiento creado más anomalías no fatales
// (saldo negativo en modo no estricto, sobre-recepción, etc.).
type RegisterMovementResponse struct {
	Movement  MovementResponse `json:"movement"`
	Anomalies []domain.Anomaly `json:"anomalies,omitempty"`
}

// MovementListResponse página del feed de movimientos. NextCursor es el id del
// último movimiento devuelto; pasarlo como since para continuar.
type MovementListResponse struct {
	Items      []MovementResponse `json:"items"`
	NextCursor int64              `json:"next_cursor"`
}

// BalanceResponse saldo derivado de un par (bodega, material).
type BalanceResponse struct {
	WarehouseID int64           `json:"warehouse_id"`
	MaterialID  int64           `json:"material_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// ToMovementResponse convierte la entidad a su representación JSON.
func ToMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:                     m.ID,
		Type:                   m.Type,
		MaterialID:             m.MaterialID,
		Quantity:               m.Quantity,
		Direction:              m.Direction,
		OccurredAt:             m.OccurredAt.Format("2006-01-02"),
		SourceWarehouseID:      m.SourceWarehouseID,
		DestinationWarehouseID: m.DestinationWarehouseID,
		SupplierID:             m.SupplierID,
		PurchaseOrderID:        m.PurchaseOrderID,
		ProjectID:              m.ProjectID,
		UnitPrice:              m.UnitPrice,
		ExtDocNo:               m.ExtDocNo,
		VehicleNumber:          m.VehicleNumber,
		DriverName:             m.DriverName,
		FileURL:                m.FileURL,
		CreatedAt:              m.CreatedAt,
	}
}
