package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jcastro/llantera-api/internal/domain"
	"github.com/jcastro/llantera-api/internal/domain/entity"
	"github.com/jcastro/llantera-api/internal/domain/repository"
)

// UseCase es el único camino por el que cambia el stock: cada operación corre
// dentro de una transacción que bloquea la fila del código de barras
// (SELECT FOR UPDATE), valida, actualiza el contador y agrega el registro al
// libro. Cualquier fallo después del lock revierte la transacción completa,
// de modo que el contador y el libro nunca quedan a medias.
type UseCase struct {
	txRunner TxRunner
}

// NewUseCase construye el motor de movimientos.
func NewUseCase(txRunner TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// Operator identidad del operador ya autenticada (la aporta el gateway).
type Operator struct {
	ID   string
	Name string
}

// MovementInput entrada para un movimiento individual.
// LicensePlate y LicensePlateImage solo aplican a salidas.
type MovementInput struct {
	Barcode           string
	Quantity          int
	Kind              string // entity.MovementInbound | entity.MovementOutbound
	Operator          Operator
	Remark            string
	LicensePlate      string
	LicensePlateImage string
}

// MovementResult resultado de un movimiento aceptado.
type MovementResult struct {
	BarcodeID string
	RecordID  string
	NewStock  int
}

// RecordMovement registra una entrada o salida individual.
// Errores: domain.ErrInvalidInput (código vacío o cantidad <= 0),
// domain.ErrNotFound (código desconocido) y domain.InsufficientStockError
// (salida mayor que el stock actual; lleva el stock para mostrarlo).
func (uc *UseCase) RecordMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	input.Barcode = strings.TrimSpace(input.Barcode)
	if !entity.ValidMovementKind(input.Kind) || input.Barcode == "" || input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(
		barcodeRepo repository.BarcodeRepository,
		movementRepo repository.MovementRepository,
	) error {
		res, err := applyMovement(barcodeRepo, movementRepo, input)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// applyMovement ejecuta un movimiento con los repositorios de la transacción
// del caller: bloquea la fila del código, valida stock suficiente (salidas),
// persiste el nuevo contador y agrega la fila al libro. El input llega ya
// validado y con el código sin espacios.
func applyMovement(
	barcodeRepo repository.BarcodeRepository,
	movementRepo repository.MovementRepository,
	input MovementInput,
) (*MovementResult, error) {
	b, err := barcodeRepo.GetByCodeForUpdate(input.Barcode)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}

	newStock := b.Stock + input.Quantity
	if input.Kind == entity.MovementOutbound {
		if b.Stock < input.Quantity {
			return nil, &domain.InsufficientStockError{CurrentStock: b.Stock}
		}
		newStock = b.Stock - input.Quantity
	}

	if err := barcodeRepo.UpdateStock(b.ID, newStock, input.Kind); err != nil {
		return nil, err
	}

	mov := &entity.Movement{
		ID:           uuid.New().String(),
		Kind:         input.Kind,
		BarcodeID:    b.ID,
		Barcode:      b.Code,
		ProductID:    b.ProductID,
		Quantity:     input.Quantity,
		OperatorID:   input.Operator.ID,
		OperatorName: input.Operator.Name,
		Remark:       input.Remark,
		CreatedAt:    time.Now(),
	}
	if input.Kind == entity.MovementOutbound {
		mov.LicensePlate = input.LicensePlate
		mov.LicensePlateImage = input.LicensePlateImage
	}
	if err := movementRepo.Create(mov); err != nil {
		return nil, err
	}

	return &MovementResult{BarcodeID: b.ID, RecordID: mov.ID, NewStock: newStock}, nil
}
