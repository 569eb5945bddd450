package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
)

// CreatePurchaseOrderRequest crea una orden en DRAFT.
type CreatePurchaseOrderRequest struct {
	SupplierID   int64  `json:"supplier_id"`
	WarehouseID  int64  `json:"warehouse_id"`
	OrderDate    string `json:"order_date"`
	ExpectedDate string `json:"expected_date,omitempty"`
}

// CreatePOItemRequest agrega una posición a la orden (única por material).
type CreatePOItemRequest struct {
	MaterialID int64            `json:"material_id"`
	QtyOrdered decimal.Decimal  `json:"qty_ordered"`
	UnitPrice  *decimal.Decimal `json:"unit_price,omitempty"`
	Currency   string           `json:"currency,omitempty"`
}

// POItemResponse posición con su cumplimiento derivado.
type POItemResponse struct {
	ID          int64            `json:"id"`
	MaterialID  int64            `json:"material_id"`
	QtyOrdered  decimal.Decimal  `json:"qty_ordered"`
	QtyReceived decimal.Decimal  `json:"qty_received"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	Currency    string           `json:"currency,omitempty"`
	// LatestQuote última cotización del proveedor para este material, como
	// referencia de precio. Vacía si no hay historial.
	LatestQuote *decimal.Decimal `json:"latest_quote,omitempty"`
}

// PurchaseOrderResponse orden con estado derivado y cumplimiento por posición.
type PurchaseOrderResponse struct {
	ID           int64            `json:"id"`
	SupplierID   int64            `json:"supplier_id"`
	WarehouseID  int64            `json:"warehouse_id"`
	OrderDate    string           `json:"order_date"`
	ExpectedDate string           `json:"expected_date,omitempty"`
	Status       string           `json:"status"`
	Items        []POItemResponse `json:"items"`
	Anomalies    []domain.Anomaly `json:"anomalies,omitempty"`
}

// PurchaseOrderListResponse listado paginado de órdenes (sin posiciones).
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderSummary `json:"items"`
	Page  PageResponse           `json:"page"`
}

// PurchaseOrderSummary encabezado de la orden para listados.
type PurchaseOrderSummary struct {
	ID          int64  `json:"id"`
	SupplierID  int64  `json:"supplier_id"`
	WarehouseID int64  `json:"warehouse_id"`
	OrderDate   string `json:"order_date"`
	Status      string `json:"status"`
}
