package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos.
type MovementHandler struct {
	appendUC *ledger.AppendMovementUseCase
	queryUC  *ledger.QueryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(appendUC *ledger.AppendMovementUseCase, queryUC *ledger.QueryUseCase) *MovementHandler {
	return &MovementHandler{appendUC: appendUC, queryUC: queryUC}
}

// Register godoc
// @Summary      Registrar movimiento de inventario
// @Description  Registra un RECEIPT, ISSUE, TRANSFER o ADJUST en el libro y
//
//	actualiza los saldos en la misma transacción. Reintentos con la
//	misma idempotency_key devuelven el movimiento original.
//
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "type, material_id, quantity, occurred_at, bodegas según el tipo"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	draft, err := draftFromRequest(in)
	if err != nil {
		return writeError(c, err)
	}
	result, err := h.appendUC.Append(c.Context(), draft)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterMovementResponse{
		Movement:  dto.ToMovementResponse(result.Movement),
		Anomalies: result.Anomalies,
	})
}

// Transfer godoc
// @Summary      Trasladar material entre bodegas
// @Description  Registra un único movimiento TRANSFER cuyo doble efecto (resta
//
//	en origen, suma en destino) se confirma atómicamente.
//
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "material_id, source_warehouse_id, destination_warehouse_id, quantity, occurred_at"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/transfer [post]
func (h *MovementHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	occurredAt, err := time.Parse("2006-01-02", in.OccurredAt)
	if err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	src, dst := in.SourceWarehouseID, in.DestinationWarehouseID
	draft := &entity.Movement{
		MaterialID:             in.MaterialID,
		Quantity:               in.Quantity,
		OccurredAt:             occurredAt,
		SourceWarehouseID:      &src,
		DestinationWarehouseID: &dst,
		ExtDocNo:               in.ExtDocNo,
		VehicleNumber:          in.VehicleNumber,
		ShippedByName:          in.ShippedByName,
		AcceptedByName:         in.AcceptedByName,
	}
	if in.IdempotencyKey != "" {
		key := in.IdempotencyKey
		draft.IdempotencyKey = &key
	}
	result, err := h.appendUC.Transfer(c.Context(), draft)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterMovementResponse{
		Movement:  dto.ToMovementResponse(result.Movement),
		Anomalies: result.Anomalies,
	})
}

// List godoc
// @Summary      Feed de movimientos por cursor
// @Description  Devuelve movimientos con id > since en orden ascendente.
//
//	next_cursor es el id del último devuelto; pasarlo como since
//	para continuar el replay.
//
// @Tags         movements
// @Produce      json
// @Param        since  query  int  false  "Cursor: último id visto (0 = desde el inicio)"
// @Param        limit  query  int  false  "Máximo de registros (default 100, tope 500)"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	since := int64(c.QueryInt("since", 0))
	limit := c.QueryInt("limit", 0)

	list, err := h.queryUC.ListSince(c.Context(), since, limit)
	if err != nil {
		return writeError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(list))
	cursor := since
	for _, m := range list {
		items = append(items, dto.ToMovementResponse(m))
		cursor = m.ID
	}
	return c.JSON(dto.MovementListResponse{Items: items, NextCursor: cursor})
}

// draftFromRequest convierte la petición en un borrador de movimiento.
// La validación semántica por tipo la hace el dominio; aquí solo se parsean
// fechas y punteros opcionales.
func draftFromRequest(in dto.RegisterMovementRequest) (*entity.Movement, error) {
	occurredAt, err := time.Parse("2006-01-02", in.OccurredAt)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	draft := &entity.Movement{
		Type:                   in.Type,
		MaterialID:             in.MaterialID,
		Quantity:               in.Quantity,
		Direction:              in.Direction,
		OccurredAt:             occurredAt,
		SourceWarehouseID:      in.SourceWarehouseID,
		DestinationWarehouseID: in.DestinationWarehouseID,
		SupplierID:             in.SupplierID,
		PurchaseOrderID:        in.PurchaseOrderID,
		ProjectID:              in.ProjectID,
		UnitPrice:              in.UnitPrice,
		ExtDocNo:               in.ExtDocNo,
		VehicleNumber:          in.VehicleNumber,
		DriverName:             in.DriverName,
		ShippedByName:          in.ShippedByName,
		AcceptedByName:         in.AcceptedByName,
		FileURL:                in.FileURL,
		FileMIME:               in.FileMIME,
		FileHash:               in.FileHash,
	}
	for _, d := range []struct {
		raw string
		dst **time.Time
	}{
		{in.ExtDocDate, &draft.ExtDocDate},
		{in.ShipDate, &draft.ShipDate},
		{in.LoadDate, &draft.LoadDate},
	} {
		if d.raw == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", d.raw)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		*d.dst = &t
	}
	if in.IdempotencyKey != "" {
		key := in.IdempotencyKey
		draft.IdempotencyKey = &key
	}
	return draft, nil
}
