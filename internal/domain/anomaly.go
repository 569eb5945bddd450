package domain

// Códigos de anomalía: avisos informativos que acompañan una operación
// aceptada. Nunca bloquean el movimiento; se exponen en la respuesta y en los
// logs para auditoría.
const (
	AnomalyNegativeBalance   = "negative_balance"   // saldo quedó bajo cero (modo no estricto)
	AnomalyOverReceipt       = "over_receipt"       // recibido > ordenado en una posición de la orden
	AnomalyUnorderedMaterial = "unordered_material" // recepción de un material que no está en la orden
)

// Anomaly es un aviso no fatal asociado a una operación del libro.
type Anomaly struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}
