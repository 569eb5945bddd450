package dto

import "github.com/shopspring/decimal"

// DTOs del registro de referencia: unidades, categorías, materiales,
// proveedores, proyectos y bodegas.

type CreateUnitRequest struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type UnitResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type CreateCategoryRequest struct {
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

type UpdateCategoryParentRequest struct {
	ParentID *int64 `json:"parent_id"`
}

type CategoryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

type CreateMaterialRequest struct {
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	UnitID     int64  `json:"unit_id"`
	CategoryID int64  `json:"category_id"`
}

type MaterialResponse struct {
	ID         int64  `json:"id"`
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	UnitID     int64  `json:"unit_id"`
	CategoryID int64  `json:"category_id"`
}

type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

type CreateSupplierRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	TaxID string `json:"tax_id,omitempty"`
}

type SupplierResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	TaxID string `json:"tax_id,omitempty"`
}

type CreateSupplierMaterialRequest struct {
	MaterialID   int64            `json:"material_id"`
	LeadTimeDays *int             `json:"lead_time_days,omitempty"`
	MinOrderQty  *decimal.Decimal `json:"min_order_qty,omitempty"`
	Currency     string           `json:"currency,omitempty"`
}

type SupplierMaterialResponse struct {
	ID           int64            `json:"id"`
	SupplierID   int64            `json:"supplier_id"`
	MaterialID   int64            `json:"material_id"`
	LeadTimeDays *int             `json:"lead_time_days,omitempty"`
	MinOrderQty  *decimal.Decimal `json:"min_order_qty,omitempty"`
	Currency     string           `json:"currency,omitempty"`
}

type CreateSupplierPriceRequest struct {
	MaterialID int64           `json:"material_id"`
	Price      decimal.Decimal `json:"price"`
	Currency   string          `json:"currency,omitempty"`
	PriceDate  string          `json:"price_date"`
}

type SupplierPriceResponse struct {
	ID         int64           `json:"id"`
	SupplierID int64           `json:"supplier_id"`
	MaterialID int64           `json:"material_id"`
	Price      decimal.Decimal `json:"price"`
	Currency   string          `json:"currency,omitempty"`
	PriceDate  string          `json:"price_date"`
}

type CreateProjectRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city,omitempty"`
	Customer string `json:"customer,omitempty"`
	Address  string `json:"address,omitempty"`
}

type ProjectResponse struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city,omitempty"`
	Customer string `json:"customer,omitempty"`
	Address  string `json:"address,omitempty"`
}

type CreateWarehouseRequest struct {
	ProjectID int64  `json:"project_id"`
	Name      string `json:"name"`
	Type      string `json:"type,omitempty"`
	Address   string `json:"address,omitempty"`
}

type WarehouseResponse struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	Name      string `json:"name"`
	Type      string `json:"type,omitempty"`
	Address   string `json:"address,omitempty"`
}

type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
