package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/registry"
)

// CatalogHandler maneja el catálogo de referencia: unidades, categorías y materiales.
type CatalogHandler struct {
	unitUC     *registry.UnitUseCase
	categoryUC *registry.CategoryUseCase
	materialUC *registry.MaterialUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(unitUC *registry.UnitUseCase, categoryUC *registry.CategoryUseCase, materialUC *registry.MaterialUseCase) *CatalogHandler {
	return &CatalogHandler{unitUC: unitUC, categoryUC: categoryUC, materialUC: materialUC}
}

// CreateUnit godoc
// @Summary      Crear unidad de medida
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUnitRequest  true  "name, symbol"
// @Success      201   {object}  dto.UnitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/units [post]
func (h *CatalogHandler) CreateUnit(c *fiber.Ctx) error {
	var in dto.CreateUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.unitUC.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListUnits godoc
// @Summary      Listar unidades de medida
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.UnitResponse
// @Router       /api/units [get]
func (h *CatalogHandler) ListUnits(c *fiber.Ctx) error {
	resp, err := h.unitUC.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// CreateCategory godoc
// @Summary      Crear categoría de materiales
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "name; parent_id opcional"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.categoryUC.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	resp, err := h.categoryUC.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// UpdateCategoryParent godoc
// @Summary      Mover una categoría bajo otro padre
// @Description  parent_id en null la convierte en raíz. Se rechaza cualquier
//
//	movimiento que forme un ciclo en la jerarquía.
//
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryParentRequest  true  "parent_id"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/parent [put]
func (h *CatalogHandler) UpdateCategoryParent(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateCategoryParentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.categoryUC.UpdateParent(c.Context(), id, in.ParentID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// DeleteCategory godoc
// @Summary      Borrar una categoría sin hijas ni materiales
// @Tags         catalog
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.categoryUC.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateMaterial godoc
// @Summary      Crear material con SKU único
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "sku, name, unit_id, category_id"
// @Success      201   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/materials [post]
func (h *CatalogHandler) CreateMaterial(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.materialUC.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetMaterial godoc
// @Summary      Consultar material por ID
// @Tags         catalog
// @Produce      json
// @Param        id   path  int  true  "ID del material"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [get]
func (h *CatalogHandler) GetMaterial(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	resp, err := h.materialUC.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material no encontrado"})
	}
	return c.JSON(resp)
}

// ListMaterials godoc
// @Summary      Listar materiales
// @Tags         catalog
// @Produce      json
// @Param        limit   query  int  false  "Máximo de registros (default 50)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.MaterialListResponse
// @Router       /api/materials [get]
func (h *CatalogHandler) ListMaterials(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	resp, err := h.materialUC.List(c.Context(), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}
