package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. DRAFT y ORDERED los fija el operador;
// PARTIALLY_RECEIVED y RECEIVED se derivan de las recepciones; CANCELLED es
// terminal y solo se alcanza por acción explícita desde DRAFT u ORDERED.
const (
	POStatusDRAFT             = "DRAFT"
	POStatusORDERED           = "ORDERED"
	POStatusPartiallyReceived = "PARTIALLY_RECEIVED"
	POStatusRECEIVED          = "RECEIVED"
	POStatusCANCELLED         = "CANCELLED"
)

// PurchaseOrder representa un acuerdo con un proveedor para una bodega.
type PurchaseOrder struct {
	ID           int64
	SupplierID   int64
	WarehouseID  int64
	OrderDate    time.Time
	ExpectedDate *time.Time
	Status       string
	CreatedAt    time.Time
}

// POItem es una posición de la orden, única por (orden, material).
// La orden es dueña de sus posiciones: borrar la orden las borra en cascada.
type POItem struct {
	ID         int64
	POID       int64
	MaterialID int64
	QtyOrdered decimal.Decimal
	UnitPrice  *decimal.Decimal
	Currency   string
}
