package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor de materiales.
type Supplier struct {
	ID    int64
	Name  string
	Phone string
	Email string
	TaxID string // NIT / BIN del proveedor
}

// SupplierMaterial es el surtido del proveedor: qué materiales ofrece y con
// qué condiciones comerciales. Único por (proveedor, material).
type SupplierMaterial struct {
	ID           int64
	SupplierID   int64
	MaterialID   int64
	LeadTimeDays *int
	MinOrderQty  *decimal.Decimal
	Currency     string
}

// SupplierMaterialPrice es una cotización fechada por (proveedor, material).
// Serie de tiempo de solo lectura para el motor: el reconciliador la consulta
// para comparar el precio pactado en la orden contra la última cotización.
type SupplierMaterialPrice struct {
	ID         int64
	SupplierID int64
	MaterialID int64
	Price      decimal.Decimal
	Currency   string
	PriceDate  time.Time
}
