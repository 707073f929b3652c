package repository

import (
	"time"

	"github.com/jcastro/llantera-api/internal/domain/entity"
)

// MovementFilter filtros para consultar el libro de entradas/salidas.
type MovementFilter struct {
	Kind       string // entity.MovementInbound | entity.MovementOutbound
	Barcode    string
	OperatorID string
	From       *time.Time
	To         *time.Time
}

// MovementListItem fila de listado con datos del producto denormalizados.
type MovementListItem struct {
	entity.Movement
	ProductName  string
	ProductModel string
}

// MovementRepository es el libro de movimientos, solo-agregado: las filas se
// insertan dentro de la misma transacción que actualiza el stock y nunca se
// modifican ni se borran.
type MovementRepository interface {
	Create(m *entity.Movement) error
	List(f MovementFilter, limit, offset int) ([]*MovementListItem, int, error)
}
