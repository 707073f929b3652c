package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementInbound  = "inbound"  // entrada
	MovementOutbound = "outbound" // salida
)

// ValidMovementKind indica si kind es un tipo de movimiento conocido.
func ValidMovementKind(kind string) bool {
	return kind == MovementInbound || kind == MovementOutbound
}

// Movement es el hecho inmutable de un cambio de stock: una fila del libro
// de entradas o salidas. Una vez escrito nunca se modifica ni se borra.
// Quantity es siempre positiva; el sentido lo da Kind.
// LicensePlate y LicensePlateImage solo aplican a salidas (vehículo que retira).
type Movement struct {
	ID                string
	Kind              string
	BarcodeID         string
	Barcode           string // denormalizado para consultas
	ProductID         string // denormalizado para consultas
	Quantity          int
	OperatorID        string
	OperatorName      string
	Remark            string
	LicensePlate      string
	LicensePlateImage string
	CreatedAt         time.Time
}
