package entity

import "github.com/shopspring/decimal"

// Warehouse representa una bodega de obra, ligada a un proyecto.
type Warehouse struct {
	ID        int64
	ProjectID int64
	Name      string
	Type      string // central, obra, contenedor...
	Address   string
}

// WarehouseMaterialPolicy define el mínimo de existencias por (bodega, material).
// La configura el operador; el motor del libro solo la consume.
type WarehouseMaterialPolicy struct {
	WarehouseID int64
	MaterialID  int64
	MinStock    decimal.Decimal
}
