package dto

import "github.com/shopspring/decimal"

// UpsertPolicyRequest crea o actualiza el mínimo de existencias de un par.
type UpsertPolicyRequest struct {
	WarehouseID int64           `json:"warehouse_id"`
	MaterialID  int64           `json:"material_id"`
	MinStock    decimal.Decimal `json:"min_stock"`
}

// PolicyResponse política configurada.
type PolicyResponse struct {
	WarehouseID int64           `json:"warehouse_id"`
	MaterialID  int64           `json:"material_id"`
	MinStock    decimal.Decimal `json:"min_stock"`
}

// BreachResponse par (bodega, material) bajo mínimo.
type BreachResponse struct {
	WarehouseID    int64           `json:"warehouse_id"`
	MaterialID     int64           `json:"material_id"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	MinStock       decimal.Decimal `json:"min_stock"`
	Deficit        decimal.Decimal `json:"deficit"`
}
