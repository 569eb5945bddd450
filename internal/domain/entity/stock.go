package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa el saldo actual de un material en una bodega (tabla resumen).
// Es una caché derivada del libro de movimientos: se mantiene en la misma
// transacción que cada append y es reconstruible por replay. Nunca es la
// fuente de verdad.
type Stock struct {
	WarehouseID int64
	MaterialID  int64
	Quantity    decimal.Decimal
	UpdatedAt   time.Time
}
