package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/registry"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// SupplierHandler maneja proveedores, su surtido y su historial de precios.
type SupplierHandler struct {
	uc *registry.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *registry.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "name; phone, email, tax_id opcionales"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Produce      json
// @Param        limit   query  int  false  "Máximo de registros (default 50)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.SupplierResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	resp, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// AddMaterial godoc
// @Summary      Agregar material al surtido del proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del proveedor"
// @Param        body  body  dto.CreateSupplierMaterialRequest  true  "material_id; condiciones opcionales"
// @Success      201   {object}  dto.SupplierMaterialResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/materials [post]
func (h *SupplierHandler) AddMaterial(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateSupplierMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.AddMaterial(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListMaterials godoc
// @Summary      Listar el surtido del proveedor
// @Tags         suppliers
// @Produce      json
// @Param        id   path  int  true  "ID del proveedor"
// @Success      200  {array}  dto.SupplierMaterialResponse
// @Router       /api/suppliers/{id}/materials [get]
func (h *SupplierHandler) ListMaterials(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	resp, err := h.uc.ListMaterials(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// AddPrice godoc
// @Summary      Registrar cotización fechada
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del proveedor"
// @Param        body  body  dto.CreateSupplierPriceRequest  true  "material_id, price, price_date"
// @Success      201   {object}  dto.SupplierPriceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/prices [post]
func (h *SupplierHandler) AddPrice(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateSupplierPriceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.AddPrice(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListPrices godoc
// @Summary      Historial de cotizaciones por material
// @Tags         suppliers
// @Produce      json
// @Param        id           path   int  true  "ID del proveedor"
// @Param        material_id  query  int  true  "ID del material"
// @Success      200  {array}  dto.SupplierPriceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/prices [get]
func (h *SupplierHandler) ListPrices(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	materialID := int64(c.QueryInt("material_id", 0))
	if materialID <= 0 {
		return writeError(c, domain.ErrInvalidInput)
	}
	resp, err := h.uc.ListPrices(c.Context(), id, materialID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Borrar proveedor con cascada sobre surtido y precios
// @Description  Se rechaza si movimientos u órdenes de compra lo referencian:
//
//	el historial del libro no puede quedar con llaves colgando.
//
// @Tags         suppliers
// @Produce      json
// @Param        id   path  int  true  "ID del proveedor"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
