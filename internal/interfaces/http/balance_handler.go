package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// BalanceHandler maneja las consultas de saldos derivados del libro.
type BalanceHandler struct {
	queryUC *ledger.QueryUseCase
}

// NewBalanceHandler construye el handler.
func NewBalanceHandler(queryUC *ledger.QueryUseCase) *BalanceHandler {
	return &BalanceHandler{queryUC: queryUC}
}

// Get godoc
// @Summary      Saldo actual de un par (bodega, material)
// @Description  Lee la tabla resumen mantenida en cada append. Un par sin
//
//	movimientos tiene saldo cero.
//
// @Tags         balances
// @Produce      json
// @Param        warehouse_id  query  int  true  "ID de la bodega"
// @Param        material_id   query  int  true  "ID del material"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/balances [get]
func (h *BalanceHandler) Get(c *fiber.Ctx) error {
	warehouseID := int64(c.QueryInt("warehouse_id", 0))
	materialID := int64(c.QueryInt("material_id", 0))
	if warehouseID <= 0 || materialID <= 0 {
		return writeError(c, domain.ErrInvalidInput)
	}
	qty, err := h.queryUC.BalanceOf(c.Context(), warehouseID, materialID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.BalanceResponse{WarehouseID: warehouseID, MaterialID: materialID, Quantity: qty})
}

// Recompute godoc
// @Summary      Recalcular saldo por barrido del libro
// @Description  Recalcula el saldo sumando todos los movimientos del par en vez
//
//	de leer el resumen. Camino de auditoría: debe coincidir con el
//	saldo servido por GET /api/balances.
//
// @Tags         balances
// @Produce      json
// @Param        warehouse_id  query  int  true  "ID de la bodega"
// @Param        material_id   query  int  true  "ID del material"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/balances/recompute [post]
func (h *BalanceHandler) Recompute(c *fiber.Ctx) error {
	warehouseID := int64(c.QueryInt("warehouse_id", 0))
	materialID := int64(c.QueryInt("material_id", 0))
	if warehouseID <= 0 || materialID <= 0 {
		return writeError(c, domain.ErrInvalidInput)
	}
	qty, err := h.queryUC.RecomputeBalance(c.Context(), warehouseID, materialID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.BalanceResponse{WarehouseID: warehouseID, MaterialID: materialID, Quantity: qty})
}
