package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ValidateMovement verifica los invariantes por tipo de movimiento antes del append:
//   - RECEIPT: destino obligatorio, sin origen; proveedor y orden opcionales.
//   - ISSUE: origen obligatorio, sin destino.
//   - TRANSFER: origen y destino obligatorios y distintos.
//   - ADJUST: dirección IN con bodega destino, o dirección OUT con bodega
//     origen; nunca ambas bodegas. El emparejamiento es fijo para que el
//     replay del libro atribuya el ajuste a la misma bodega que el resumen.
//
// La cantidad es positiva para todos los tipos; el signo de un ADJUST lo da la
// dirección, nunca la cantidad. La referencia a orden de compra solo aplica a
// RECEIPT (es lo que consume el reconciliador).
func ValidateMovement(m *entity.Movement) error {
	if !m.Quantity.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: la cantidad debe ser positiva", ErrInvalidInput)
	}
	if m.Type != entity.MovementTypeADJUST && m.Direction != "" {
		return fmt.Errorf("%w: direction solo aplica a ADJUST", ErrInvalidInput)
	}
	if m.PurchaseOrderID != nil && m.Type != entity.MovementTypeRECEIPT {
		return fmt.Errorf("%w: purchase_order_id solo aplica a RECEIPT", ErrInvalidInput)
	}
	if m.SupplierID != nil && m.Type != entity.MovementTypeRECEIPT {
		return fmt.Errorf("%w: supplier_id solo aplica a RECEIPT", ErrInvalidInput)
	}

	switch m.Type {
	case entity.MovementTypeRECEIPT:
		if m.DestinationWarehouseID == nil || m.SourceWarehouseID != nil {
			return fmt.Errorf("%w: RECEIPT requiere bodega destino y ninguna bodega origen", ErrInvalidInput)
		}
	case entity.MovementTypeISSUE:
		if m.SourceWarehouseID == nil || m.DestinationWarehouseID != nil {
			return fmt.Errorf("%w: ISSUE requiere bodega origen y ninguna bodega destino", ErrInvalidInput)
		}
	case entity.MovementTypeTRANSFER:
		if m.SourceWarehouseID == nil || m.DestinationWarehouseID == nil {
			return fmt.Errorf("%w: TRANSFER requiere bodega origen y destino", ErrInvalidInput)
		}
		if *m.SourceWarehouseID == *m.DestinationWarehouseID {
			return ErrSameWarehouse
		}
	case entity.MovementTypeADJUST:
		switch m.Direction {
		case entity.AdjustDirectionIN:
			if m.DestinationWarehouseID == nil || m.SourceWarehouseID != nil {
				return fmt.Errorf("%w: ADJUST IN requiere bodega destino y ninguna bodega origen", ErrInvalidInput)
			}
		case entity.AdjustDirectionOUT:
			if m.SourceWarehouseID == nil || m.DestinationWarehouseID != nil {
				return fmt.Errorf("%w: ADJUST OUT requiere bodega origen y ninguna bodega destino", ErrInvalidInput)
			}
		default:
			return fmt.Errorf("%w: ADJUST requiere direction IN u OUT", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: tipo de movimiento desconocido %q", ErrInvalidInput, m.Type)
	}
	return nil
}

// StockEffect es la contribución con signo de un movimiento al saldo de una bodega.
type StockEffect struct {
	WarehouseID int64
	Delta       decimal.Decimal
}

// MovementEffects devuelve los efectos con signo de un movimiento sobre los
// saldos: RECEIPT y ADJUST-IN suman, ISSUE y ADJUST-OUT restan, TRANSFER resta
// en origen y suma en destino. Ambos efectos de un TRANSFER salen del mismo
// registro: el agregador nunca puede aplicar solo un lado.
// Asume un movimiento ya validado.
func MovementEffects(m *entity.Movement) []StockEffect {
	switch m.Type {
	case entity.MovementTypeRECEIPT:
		return []StockEffect{{WarehouseID: *m.DestinationWarehouseID, Delta: m.Quantity}}
	case entity.MovementTypeISSUE:
		return []StockEffect{{WarehouseID: *m.SourceWarehouseID, Delta: m.Quantity.Neg()}}
	case entity.MovementTypeTRANSFER:
		return []StockEffect{
			{WarehouseID: *m.SourceWarehouseID, Delta: m.Quantity.Neg()},
			{WarehouseID: *m.DestinationWarehouseID, Delta: m.Quantity},
		}
	case entity.MovementTypeADJUST:
		if m.Direction == entity.AdjustDirectionOUT {
			return []StockEffect{{WarehouseID: *m.SourceWarehouseID, Delta: m.Quantity.Neg()}}
		}
		return []StockEffect{{WarehouseID: *m.DestinationWarehouseID, Delta: m.Quantity}}
	}
	return nil
}
