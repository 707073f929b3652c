package ledger

import (
	"context"
	"errors"
	"strings"

	"github.com/jcastro/llantera-api/internal/domain"
	"github.com/jcastro/llantera-api/internal/domain/entity"
	"github.com/jcastro/llantera-api/internal/domain/repository"
)

// BatchItem un renglón del lote: código, cantidad y observación opcional.
type BatchItem struct {
	Barcode  string
	Quantity int
	Remark   string
}

// BatchInput entrada para un lote de movimientos. En salidas, la placa del
// vehículo (y su foto) es una sola y se aplica a todos los renglones: un
// camión retira varios artículos en un solo viaje.
type BatchInput struct {
	Kind              string
	Items             []BatchItem
	Operator          Operator
	LicensePlate      string
	LicensePlateImage string
}

// FailedItem renglón rechazado con su motivo.
type FailedItem struct {
	Barcode string `json:"barcode"`
	Reason  string `json:"reason"`
}

// BatchOutcome resultado completo del lote. No se persiste.
type BatchOutcome struct {
	SuccessCount int          `json:"success_count"`
	FailedCount  int          `json:"failed_count"`
	FailedItems  []FailedItem `json:"failed_items"`
}

// RecordBatch procesa el lote en orden dentro de UNA transacción, al mejor
// esfuerzo: un renglón inválido (código vacío, cantidad no positiva, código
// desconocido, stock insuficiente) se anota en FailedItems y el lote sigue.
// Los renglones aceptados se confirman juntos al final. Un fallo de
// almacenamiento aborta el lote completo con rollback, incluidos los
// renglones ya marcados como exitosos.
//
// Códigos repetidos dentro del lote no se combinan: cada renglón se aplica en
// secuencia, así que el segundo ve el stock que dejó el primero.
func (uc *UseCase) RecordBatch(ctx context.Context, input BatchInput) (*BatchOutcome, error) {
	if !entity.ValidMovementKind(input.Kind) || len(input.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	outcome := &BatchOutcome{FailedItems: []FailedItem{}}
	err := uc.txRunner.Run(ctx, func(
		barcodeRepo repository.BarcodeRepository,
		movementRepo repository.MovementRepository,
	) error {
		for _, item := range input.Items {
			code := strings.TrimSpace(item.Barcode)
			if code == "" || item.Quantity == 0 {
				outcome.FailedItems = append(outcome.FailedItems, FailedItem{
					Barcode: code,
					Reason:  "código de barras o cantidad vacíos",
				})
				continue
			}
			if item.Quantity < 0 {
				outcome.FailedItems = append(outcome.FailedItems, FailedItem{
					Barcode: code,
					Reason:  "la cantidad debe ser mayor que 0",
				})
				continue
			}

			_, err := applyMovement(barcodeRepo, movementRepo, MovementInput{
				Barcode:           code,
				Quantity:          item.Quantity,
				Kind:              input.Kind,
				Operator:          input.Operator,
				Remark:            item.Remark,
				LicensePlate:      input.LicensePlate,
				LicensePlateImage: input.LicensePlateImage,
			})
			if err != nil {
				// Errores de negocio se anotan y el lote continúa; cualquier
				// otro error es fallo de infraestructura y aborta el lote.
				var insufficient *domain.InsufficientStockError
				switch {
				case errors.Is(err, domain.ErrNotFound):
					outcome.FailedItems = append(outcome.FailedItems, FailedItem{
						Barcode: code,
						Reason:  "el código de barras no existe",
					})
				case errors.As(err, &insufficient):
					outcome.FailedItems = append(outcome.FailedItems, FailedItem{
						Barcode: code,
						Reason:  insufficient.Error(),
					})
				default:
					return err
				}
				continue
			}
			outcome.SuccessCount++
		}
		outcome.FailedCount = len(outcome.FailedItems)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}
