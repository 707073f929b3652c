package ledger

import (
	"context"

	"github.com/jcastro/llantera-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// movimientos: si fn devuelve error, todo lo hecho dentro se revierte.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		barcodeRepo repository.BarcodeRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
