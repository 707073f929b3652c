package ledger_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/llantera-api/internal/application/ledger"
	"github.com/jcastro/llantera-api/internal/domain"
	"github.com/jcastro/llantera-api/internal/domain/entity"
)

var testOperator = ledger.Operator{ID: "u-1", Name: "María Gómez"}

func newEngine(store *fakeStore) *ledger.UseCase {
	return ledger.NewUseCase(&fakeTxRunner{store: store})
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimiento individual
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_EntradaActualizaStockYLibro(t *testing.T) {
	store := newFakeStore()
	store.addBarcode("T-1001", 0)
	uc := newEngine(store)

	res, err := uc.RecordMovement(context.Background(), ledger.MovementInput{
		Barcode:  "T-1001",
		Quantity: 10,
		Kind:     entity.MovementInbound,
		Operator: testOperator,
		Remark:   "compra semanal",
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, 10, res.NewStock, "el stock nuevo debe ser 10")
	assert.NotEmpty(t, res.RecordID, "debe devolver el id del registro generado")
	assert.Equal(t, 10, store.stockOf("T-1001"))

	movs := store.movementsOf("T-1001")
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementInbound, movs[0].Kind)
	assert.Equal(t, 10, movs[0].Quantity)
	assert.Equal(t, "u-1", movs[0].OperatorID)
	assert.Equal(t, "María Gómez", movs[0].OperatorName)
	assert.Equal(t, "compra semanal", movs[0].Remark)
}

func TestRecordMovement_EntradaInvalida(t *testing.T) {
	store := newFakeStore()
	store.addBarcode("T-1001", 5)
	uc := newEngine(store)

	cases := []ledger.MovementInput{
		{Barcode: "T-1001", Quantity: 0, Kind: entity.MovementInbound},
		{Barcode: "T-1001", Quantity: -3, Kind: entity.MovementInbound},
		{Barcode: "   ", Quantity: 1, Kind: entity.MovementInbound},
		{Barcode: "T-1001", Quantity: 1, Kind: "transfer"},
	}
	for _, in := range cases {
		in.Operator = testOperator
		_, err := uc.RecordMovement(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	assert.Equal(t, 5, store.stockOf("T-1001"), "una entrada inválida no cambia el stock")
	assert.Empty(t, store.movementsOf("T-1001"), "una entrada inválida no escribe en el libro")
}

func TestRecordMovement_CodigoDesconocido(t *testing.T) {
	store := newFakeStore()
	uc := newEngine(store)

	_, err := uc.RecordMovement(context.Background(), ledger.MovementInput{
		Barcode:  "NO-EXISTE",
		Quantity: 1,
		Kind:     entity.MovementInbound,
		Operator: testOperator,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Escenario de referencia: stock 5, salida de 5 deja 0; la siguiente salida
// de 1 se rechaza con conflicto y el mensaje muestra el stock actual (0).
func TestRecordMovement_SalidaExactaYLuegoConflicto(t *testing.T) {
	store := newFakeStore()
	store.addBarcode("T-1001", 5)
	uc := newEngine(store)

	res, err := uc.RecordMovement(context.Background(), ledger.MovementInput{
		Barcode:      "T-1001",
		Quantity:     5,
		Kind:         entity.MovementOutbound,
		Operator:     testOperator,
		LicensePlate: "ABC-123",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.NewStock)

	_, err = uc.RecordMovement(context.Background(), ledger.MovementInput{
		Barcode:  "T-1001",
		Quantity: 1,
		Kind:     entity.MovementOutbound,
		Operator: testOperator,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 0, insufficient.CurrentStock, "el error debe llevar el stock previo a la operación")
	assert.Contains(t, err.Error(), "0", "el mensaje debe mostrar el stock actual")

	assert.Equal(t, 0, store.stockOf("T-1001"), "un conflicto no cambia el stock")
	assert.Len(t, store.movementsOf("T-1001"), 1, "un conflicto no escribe en el libro")
}

func TestRecordMovement_FalloDeAlmacenamientoRevierteTodo(t *testing.T) {
	store := newFakeStore()
	store.addBarcode("T-2002", 7)
	store.failOnCreate = 1
	uc := newEngine(store)

	_, err := uc.RecordMovement(context.Background(), ledger.MovementInput{
		Barcode:  "T-2002",
		Quantity: 3,
		Kind:     entity.MovementInbound,
		Operator: testOperator,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errStorageFailure)

	// Atomicidad: el stock actualizado dentro de la tx se revierte con ella.
	assert.Equal(t, 7, store.stockOf("T-2002"), "el rollback debe dejar el stock previo")
	assert.Empty(t, store.movementsOf("T-2002"))
}

func TestRecordMovement_PlacaSoloEnSalidas(t *testing.T) {
	store := newFakeStore()
	store.addBarcode("T-3003", 10)
	uc := newEngine(store)

	_, err := uc.RecordMovement(context.Background(), ledger.MovementInput{
		Barcode:      "T-3003",
		Quantity:     2,
		Kind:         entity.MovementInbound,
		Operator:     testOperator,
		LicensePlate: "XYZ-999", // se ignora en entradas
	})
	require.NoError(t, err)

	_, err = uc.RecordMovement(context.Background(), ledger.MovementInput{
		Barcode:           "T-3003",
		Quantity:          1,
		Kind:              entity.MovementOutbound,
		Operator:          testOperator,
		LicensePlate:      "XYZ-999",
		LicensePlateImage: "uploads/xyz999.jpg",
	})
	require.NoError(t, err)

	movs := store.movementsOf("T-3003")
	require.Len(t, movs, 2)
	assert.Empty(t, movs[0].LicensePlate, "las entradas no llevan placa")
	assert.Equal(t, "XYZ-999", movs[1].LicensePlate)
	assert.Equal(t, "uploads/xyz999.jpg", movs[1].LicensePlateImage)
}

// Ley de consistencia: tras cualquier secuencia de operaciones confirmadas,
// stock == sum(entradas) - sum(salidas).
func TestRecordMovement_InvarianteStockContraLibro(t *testing.T) {
	store := newFakeStore()
	store.addBarcode("T-4004", 0)
	uc := newEngine(store)
	ctx := context.Background()

	steps := []struct {
		kind string
		qty  int
	}{
		{entity.MovementInbound, 12},
		{entity.MovementOutbound, 4},
		{entity.MovementInbound, 1},
		{entity.MovementOutbound, 9},
		{entity.MovementOutbound, 1}, // conflicto: quedan 0
		{entity.MovementInbound, 30},
	}
	for _, step := range steps {
		_, _ = uc.RecordMovement(ctx, ledger.MovementInput{
			Barcode:  "T-4004",
			Quantity: step.qty,
			Kind:     step.kind,
			Operator: testOperator,
		})
		assert.Equal(t, store.ledgerSum("T-4004"), store.stockOf("T-4004"),
			"el stock debe igualar la suma del libro después de cada operación")
	}
	assert.Equal(t, 30, store.stockOf("T-4004"))
}

// Dos entradas concurrentes sobre el mismo código no pierden actualizaciones:
// el lock de fila linealiza las transacciones.
func TestRecordMovement_ConcurrenciaSinPerdidas(t *testing.T) {
	store := newFakeStore()
	store.addBarcode("T-5005", 0)
	uc := newEngine(store)

	quantities := []int{10, 20}
	var wg sync.WaitGroup
	errs := make([]error, len(quantities))
	for i, qty := range quantities {
		wg.Add(1)
		go func(i, qty int) {
			defer wg.Done()
			_, errs[i] = uc.RecordMovement(context.Background(), ledger.MovementInput{
				Barcode:  "T-5005",
				Quantity: qty,
				Kind:     entity.MovementInbound,
				Operator: testOperator,
			})
		}(i, qty)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 30, store.stockOf("T-5005"), "sin lost update: 0 + 10 + 20 = 30")
	assert.Equal(t, 30, store.ledgerSum("T-5005"))
}

func TestRecordMovement_ContextoSePropaga(t *testing.T) {
	// El TxRunner recibe el contexto del request; aquí solo verificamos que
	// un runner que lo inspecciona lo vea llegar.
	store := newFakeStore()
	store.addBarcode("T-6006", 1)
	uc := newEngine(store)

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "req-42")
	_, err := uc.RecordMovement(ctx, ledger.MovementInput{
		Barcode:  "T-6006",
		Quantity: 1,
		Kind:     entity.MovementInbound,
		Operator: testOperator,
	})
	require.NoError(t, err)
}

func TestRecordMovement_ErrorTipadoEsCompatibleConSentinela(t *testing.T) {
	err := &domain.InsufficientStockError{CurrentStock: 3}
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, "stock insuficiente, stock actual: 3", err.Error())
}
