package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de inventario.
const (
	MovementTypeRECEIPT  = "RECEIPT"  // recepción de proveedor en bodega destino
	MovementTypeISSUE    = "ISSUE"    // salida a obra desde bodega origen
	MovementTypeTRANSFER = "TRANSFER" // traslado entre bodegas (un solo registro, dos efectos)
	MovementTypeADJUST   = "ADJUST"   // corrección manual con dirección explícita
)

// Dirección de un ADJUST. La cantidad siempre es positiva; el signo lo da la dirección.
const (
	AdjustDirectionIN  = "IN"
	AdjustDirectionOUT = "OUT"
)

// Movement es un hecho inmutable del libro: un cambio de cantidad de un material
// en una o dos bodegas. Una vez insertado nunca se edita ni se borra; las
// correcciones son nuevos movimientos ADJUST.
type Movement struct {
	ID                     int64
	Type                   string
	MaterialID             int64
	Quantity               decimal.Decimal // siempre positiva
	Direction              string          // solo ADJUST: IN o OUT
	OccurredAt             time.Time       // fecha del hecho físico
	SourceWarehouseID      *int64
	DestinationWarehouseID *int64
	SupplierID             *int64
	PurchaseOrderID        *int64
	ProjectID              *int64 // obra a la que se imputa el movimiento
	UnitPrice              *decimal.Decimal

	// Metadatos del documento externo (remisión, guía de transporte)
	ExtDocNo       string
	ExtDocDate     *time.Time
	VehicleNumber  string
	DriverName     string
	ShippedByName  string
	AcceptedByName string
	ShipDate       *time.Time
	LoadDate       *time.Time

	// Adjunto (escaneo de la remisión firmada)
	FileURL  string
	FileMIME string
	FileHash string

	// Clave de idempotencia del cliente: reintentos del mismo POST devuelven
	// el movimiento ya registrado en lugar de duplicarlo.
	IdempotencyKey *string

	CreatedAt time.Time
}
