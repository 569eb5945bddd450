package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

func ptr(v int64) *int64 { return &v }

func TestValidateMovement_PorTipo(t *testing.T) {
	qty := decimal.NewFromInt(10)

	tests := []struct {
		name    string
		m       entity.Movement
		wantErr error
	}{
		{
			name: "RECEIPT válido",
			m:    entity.Movement{Type: entity.MovementTypeRECEIPT, Quantity: qty, DestinationWarehouseID: ptr(1)},
		},
		{
			name:    "RECEIPT sin destino",
			m:       entity.Movement{Type: entity.MovementTypeRECEIPT, Quantity: qty},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "RECEIPT con origen",
			m:       entity.Movement{Type: entity.MovementTypeRECEIPT, Quantity: qty, SourceWarehouseID: ptr(1), DestinationWarehouseID: ptr(2)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "ISSUE válido",
			m:    entity.Movement{Type: entity.MovementTypeISSUE, Quantity: qty, SourceWarehouseID: ptr(1)},
		},
		{
			name:    "ISSUE con destino",
			m:       entity.Movement{Type: entity.MovementTypeISSUE, Quantity: qty, SourceWarehouseID: ptr(1), DestinationWarehouseID: ptr(2)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "TRANSFER válido",
			m:    entity.Movement{Type: entity.MovementTypeTRANSFER, Quantity: qty, SourceWarehouseID: ptr(1), DestinationWarehouseID: ptr(2)},
		},
		{
			name:    "TRANSFER a la misma bodega",
			m:       entity.Movement{Type: entity.MovementTypeTRANSFER, Quantity: qty, SourceWarehouseID: ptr(1), DestinationWarehouseID: ptr(1)},
			wantErr: domain.ErrSameWarehouse,
		},
		{
			name:    "TRANSFER sin destino",
			m:       entity.Movement{Type: entity.MovementTypeTRANSFER, Quantity: qty, SourceWarehouseID: ptr(1)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "ADJUST IN válido",
			m:    entity.Movement{Type: entity.MovementTypeADJUST, Quantity: qty, Direction: entity.AdjustDirectionIN, DestinationWarehouseID: ptr(1)},
		},
		{
			name: "ADJUST OUT válido",
			m:    entity.Movement{Type: entity.MovementTypeADJUST, Quantity: qty, Direction: entity.AdjustDirectionOUT, SourceWarehouseID: ptr(1)},
		},
		{
			name:    "ADJUST IN con bodega origen",
			m:       entity.Movement{Type: entity.MovementTypeADJUST, Quantity: qty, Direction: entity.AdjustDirectionIN, SourceWarehouseID: ptr(1)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "ADJUST OUT con bodega destino",
			m:       entity.Movement{Type: entity.MovementTypeADJUST, Quantity: qty, Direction: entity.AdjustDirectionOUT, DestinationWarehouseID: ptr(1)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "ADJUST sin dirección",
			m:       entity.Movement{Type: entity.MovementTypeADJUST, Quantity: qty, SourceWarehouseID: ptr(1)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "ADJUST con dos bodegas",
			m:       entity.Movement{Type: entity.MovementTypeADJUST, Quantity: qty, Direction: entity.AdjustDirectionIN, SourceWarehouseID: ptr(1), DestinationWarehouseID: ptr(2)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "cantidad cero",
			m:       entity.Movement{Type: entity.MovementTypeRECEIPT, Quantity: decimal.Zero, DestinationWarehouseID: ptr(1)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "cantidad negativa",
			m:       entity.Movement{Type: entity.MovementTypeISSUE, Quantity: decimal.NewFromInt(-5), SourceWarehouseID: ptr(1)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "direction en un ISSUE",
			m:       entity.Movement{Type: entity.MovementTypeISSUE, Quantity: qty, Direction: entity.AdjustDirectionOUT, SourceWarehouseID: ptr(1)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "orden de compra en un TRANSFER",
			m:       entity.Movement{Type: entity.MovementTypeTRANSFER, Quantity: qty, SourceWarehouseID: ptr(1), DestinationWarehouseID: ptr(2), PurchaseOrderID: ptr(9)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "proveedor en un ISSUE",
			m:       entity.Movement{Type: entity.MovementTypeISSUE, Quantity: qty, SourceWarehouseID: ptr(1), SupplierID: ptr(9)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "tipo desconocido",
			m:       entity.Movement{Type: "LOAN", Quantity: qty, SourceWarehouseID: ptr(1)},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateMovement(&tt.m)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestMovementEffects_TransferDobleEfecto(t *testing.T) {
	m := &entity.Movement{
		Type:                   entity.MovementTypeTRANSFER,
		Quantity:               decimal.NewFromInt(200),
		SourceWarehouseID:      ptr(1),
		DestinationWarehouseID: ptr(2),
	}
	effects := domain.MovementEffects(m)
	require.Len(t, effects, 2)
	assert.Equal(t, int64(1), effects[0].WarehouseID)
	assert.True(t, effects[0].Delta.Equal(decimal.NewFromInt(-200)))
	assert.Equal(t, int64(2), effects[1].WarehouseID)
	assert.True(t, effects[1].Delta.Equal(decimal.NewFromInt(200)))
}

func TestMovementEffects_SignoPorTipo(t *testing.T) {
	receipt := &entity.Movement{Type: entity.MovementTypeRECEIPT, Quantity: decimal.NewFromInt(500), DestinationWarehouseID: ptr(1)}
	effects := domain.MovementEffects(receipt)
	require.Len(t, effects, 1)
	assert.True(t, effects[0].Delta.Equal(decimal.NewFromInt(500)))

	issue := &entity.Movement{Type: entity.MovementTypeISSUE, Quantity: decimal.NewFromInt(30), SourceWarehouseID: ptr(1)}
	effects = domain.MovementEffects(issue)
	require.Len(t, effects, 1)
	assert.True(t, effects[0].Delta.Equal(decimal.NewFromInt(-30)))

	adjustOut := &entity.Movement{
		Type:              entity.MovementTypeADJUST,
		Quantity:          decimal.NewFromInt(50),
		Direction:         entity.AdjustDirectionOUT,
		SourceWarehouseID: ptr(2),
	}
	effects = domain.MovementEffects(adjustOut)
	require.Len(t, effects, 1)
	assert.Equal(t, int64(2), effects[0].WarehouseID)
	assert.True(t, effects[0].Delta.Equal(decimal.NewFromInt(-50)))

	adjustIn := &entity.Movement{
		Type:                   entity.MovementTypeADJUST,
		Quantity:               decimal.NewFromInt(5),
		Direction:              entity.AdjustDirectionIN,
		DestinationWarehouseID: ptr(3),
	}
	effects = domain.MovementEffects(adjustIn)
	require.Len(t, effects, 1)
	assert.True(t, effects[0].Delta.Equal(decimal.NewFromInt(5)))
}

// El emparejamiento dirección/bodega de un ADJUST es fijo: IN acredita la
// bodega destino y OUT debita la bodega origen. El replay por SQL cuenta los
// ajustes con ese mismo emparejamiento, así que cualquier otra combinación
// debe rechazarse en la validación o el resumen y el recompute divergirían.
func TestAdjust_EmparejamientoDireccionBodega(t *testing.T) {
	qty := decimal.NewFromInt(50)

	cruzadoIn := &entity.Movement{
		Type: entity.MovementTypeADJUST, Quantity: qty,
		Direction: entity.AdjustDirectionIN, SourceWarehouseID: ptr(1),
	}
	require.ErrorIs(t, domain.ValidateMovement(cruzadoIn), domain.ErrInvalidInput)

	cruzadoOut := &entity.Movement{
		Type: entity.MovementTypeADJUST, Quantity: qty,
		Direction: entity.AdjustDirectionOUT, DestinationWarehouseID: ptr(1),
	}
	require.ErrorIs(t, domain.ValidateMovement(cruzadoOut), domain.ErrInvalidInput)

	in := &entity.Movement{
		Type: entity.MovementTypeADJUST, Quantity: qty,
		Direction: entity.AdjustDirectionIN, DestinationWarehouseID: ptr(3),
	}
	require.NoError(t, domain.ValidateMovement(in))
	effects := domain.MovementEffects(in)
	require.Len(t, effects, 1)
	assert.Equal(t, int64(3), effects[0].WarehouseID)
	assert.True(t, effects[0].Delta.Equal(qty))

	out := &entity.Movement{
		Type: entity.MovementTypeADJUST, Quantity: qty,
		Direction: entity.AdjustDirectionOUT, SourceWarehouseID: ptr(4),
	}
	require.NoError(t, domain.ValidateMovement(out))
	effects = domain.MovementEffects(out)
	require.Len(t, effects, 1)
	assert.Equal(t, int64(4), effects[0].WarehouseID)
	assert.True(t, effects[0].Delta.Equal(qty.Neg()))
}
