package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// POItemFulfillment es el cumplimiento de una posición de la orden:
// lo ordenado contra la suma de recepciones de ese material para esa orden.
type POItemFulfillment struct {
	MaterialID int64
	Ordered    decimal.Decimal
	Received   decimal.Decimal
}

// ReconcileItems cruza las posiciones de la orden con las cantidades recibidas
// (suma de RECEIPT por material). Devuelve el cumplimiento por posición y las
// anomalías detectadas: sobre-recepción y recepciones de materiales que no
// están en la orden. Es pura y determinista: correrla dos veces sobre los
// mismos movimientos da el mismo resultado.
func ReconcileItems(items []*entity.POItem, received map[int64]decimal.Decimal) ([]POItemFulfillment, []Anomaly) {
	fulfillment := make([]POItemFulfillment, 0, len(items))
	var anomalies []Anomaly

	ordered := make(map[int64]bool, len(items))
	for _, it := range items {
		ordered[it.MaterialID] = true
		got := received[it.MaterialID]
		fulfillment = append(fulfillment, POItemFulfillment{
			MaterialID: it.MaterialID,
			Ordered:    it.QtyOrdered,
			Received:   got,
		})
		if got.GreaterThan(it.QtyOrdered) {
			anomalies = append(anomalies, Anomaly{
				Code:   AnomalyOverReceipt,
				Detail: fmt.Sprintf("material %d: recibido %s supera lo ordenado %s", it.MaterialID, got.String(), it.QtyOrdered.String()),
			})
		}
	}
	for materialID, qty := range received {
		if !ordered[materialID] && qty.GreaterThan(decimal.Zero) {
			anomalies = append(anomalies, Anomaly{
				Code:   AnomalyUnorderedMaterial,
				Detail: fmt.Sprintf("material %d recibido sin posición en la orden", materialID),
			})
		}
	}
	return fulfillment, anomalies
}

// DerivePOStatus deriva el estado de la orden a partir del estado base y el
// cumplimiento por posición:
//
//	CANCELLED es terminal.
//	Sin recepciones: queda DRAFT u ORDERED (lo que haya fijado el operador).
//	Todas las posiciones con recibido >= ordenado: RECEIVED. La
//	sobre-recepción no bloquea RECEIVED (queda como anomalía de auditoría).
//	Cualquier otra mezcla: PARTIALLY_RECEIVED.
//
// La derivación es idempotente y monótona: las recepciones solo se agregan,
// nunca se quitan, así que el estado nunca retrocede.
func DerivePOStatus(current string, fulfillment []POItemFulfillment) string {
	if current == entity.POStatusCANCELLED {
		return entity.POStatusCANCELLED
	}

	anyReceived := false
	allMet := len(fulfillment) > 0
	for _, f := range fulfillment {
		if f.Received.GreaterThan(decimal.Zero) {
			anyReceived = true
		}
		if f.Received.LessThan(f.Ordered) {
			allMet = false
		}
	}

	if !anyReceived {
		if current == entity.POStatusDRAFT {
			return entity.POStatusDRAFT
		}
		return entity.POStatusORDERED
	}
	if allMet {
		return entity.POStatusRECEIVED
	}
	return entity.POStatusPartiallyReceived
}
