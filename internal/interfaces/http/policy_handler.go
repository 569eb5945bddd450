package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/policy"
)

// PolicyHandler maneja las políticas de mínimos y sus incumplimientos.
type PolicyHandler struct {
	uc *policy.PolicyUseCase
}

// NewPolicyHandler construye el handler.
func NewPolicyHandler(uc *policy.PolicyUseCase) *PolicyHandler {
	return &PolicyHandler{uc: uc}
}

// Upsert godoc
// @Summary      Fijar mínimo de existencias de un par (bodega, material)
// @Tags         policies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertPolicyRequest  true  "warehouse_id, material_id, min_stock"
// @Success      200   {object}  dto.PolicyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warehouse-policies [put]
func (h *PolicyHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertPolicyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Upsert(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar políticas configuradas
// @Tags         policies
// @Produce      json
// @Param        limit   query  int  false  "Máximo de registros (default 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.PolicyResponse
// @Router       /api/warehouse-policies [get]
func (h *PolicyHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	offset := c.QueryInt("offset", 0)
	resp, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Breaches godoc
// @Summary      Evaluar incumplimientos de mínimos
// @Description  Devuelve los pares cuyo saldo actual es estrictamente menor que
//
//	el mínimo. Con warehouse_id o material_id la evaluación se acota
//	a ese filtro; sort=deficit ordena de mayor a menor faltante.
//
// @Tags         policies
// @Produce      json
// @Param        warehouse_id  query  int     false  "Filtrar por bodega"
// @Param        material_id   query  int     false  "Filtrar por material"
// @Param        sort          query  string  false  "deficit = ordenar por faltante descendente"
// @Success      200  {array}  dto.BreachResponse
// @Router       /api/policy-breaches [get]
func (h *PolicyHandler) Breaches(c *fiber.Ctx) error {
	in := policy.EvaluateInput{SortByDeficit: c.Query("sort") == "deficit"}
	if v := int64(c.QueryInt("warehouse_id", 0)); v > 0 {
		in.WarehouseID = &v
	}
	if v := int64(c.QueryInt("material_id", 0)); v > 0 {
		in.MaterialID = &v
	}
	resp, err := h.uc.Evaluate(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(resp), "breaches": resp})
}
