package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/llantera-api/internal/application/ledger"
	"github.com/jcastro/llantera-api/internal/domain"
	"github.com/jcastro/llantera-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Lotes: mejor esfuerzo por renglón dentro de una sola transacción
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordBatch_EntradaInvalida(t *testing.T) {
	uc := newEngine(newFakeStore())

	_, err := uc.RecordBatch(context.Background(), ledger.BatchInput{
		Kind:     entity.MovementInbound,
		Items:    nil,
		Operator: testOperator,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "lote vacío se rechaza")

	_, err = uc.RecordBatch(context.Background(), ledger.BatchInput{
		Kind:     "ajuste",
		Items:    []ledger.BatchItem{{Barcode: "T-1", Quantity: 1}},
		Operator: testOperator,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo de movimiento desconocido se rechaza")
}

// Un renglón inválido no aborta el lote: el válido se confirma y el inválido
// queda en failed_items con su motivo.
func TestRecordBatch_MejorEsfuerzoPorRenglon(t *testing.T) {
	store := newFakeStore()
	store.addBarcode("T-1001", 0)
	uc := newEngine(store)

	out, err := uc.RecordBatch(context.Background(), ledger.BatchInput{
		Kind: entity.MovementInbound,
		Items: []ledger.BatchItem{
			{Barcode: "T-1001", Quantity: 4},
			{Barcode: "T-1001", Quantity: -2},
		},
		Operator: testOperator,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.SuccessCount)
	assert.Equal(t, 1, out.FailedCount)
	require.Len(t, out.FailedItems, 1)
	assert.Equal(t, "T-1001", out.FailedItems[0].Barcode)
	assert.Equal(t, "la cantidad debe ser mayor que 0", out.FailedItems[0].Reason)

	assert.Equal(t, 4, store.stockOf("T-1001"), "el renglón válido sí se confirma")
}

func TestRecordBatch_MotivosDeRechazo(t *testing.T) {
	store := newFakeStore()
	store.addBarcode("T-2002", 2)
	uc := newEngine(store)

	out, err := uc.RecordBatch(context.Background(), ledger.BatchInput{
		Kind: entity.MovementOutbound,
		Items: []ledger.BatchItem{
			{Barcode: "", Quantity: 3},
			{Barcode: "T-2002", Quantity: 0},
			{Barcode: "NO-EXISTE", Quantity: 1},
			{Barcode: "T-2002", Quantity: 5},
		},
		Operator:     testOperator,
		LicensePlate: "ABC-123",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.SuccessCount)
	assert.Equal(t, 4, out.FailedCount)
	require.Len(t, out.FailedItems, 4)
	assert.Equal(t, "código de barras o cantidad vacíos", out.FailedItems[0].Reason)
	assert.Equal(t, "código de barras o cantidad vacíos", out.FailedItems[1].Reason)
	assert.Equal(t, "el código de barras no existe", out.FailedItems[2].Reason)
	assert.Equal(t, "stock insuficiente, stock actual: 2", out.FailedItems[3].Reason)

	assert.Equal(t, 2, store.stockOf("T-2002"), "ningún renglón rechazado toca el stock")
}

// Códigos repetidos no se combinan: +5 y +3 se aplican en secuencia y dejan +8.
func TestRecordBatch_DuplicadosSeAplicanEnSecuencia(t *testing.T) {
	store := newFakeStore()
	store.addBarcode("T-3003", 0)
	uc := newEngine(store)

	out, err := uc.RecordBatch(context.Background(), ledger.BatchInput{
		Kind: entity.MovementInbound,
		Items: []ledger.BatchItem{
			{Barcode: "T-3003", Quantity: 5},
			{Barcode: "T-3003", Quantity: 3},
		},
		Operator: testOperator,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, out.SuccessCount)
	assert.Equal(t, 8, store.stockOf("T-3003"))

	movs := store.movementsOf("T-3003")
	require.Len(t, movs, 2, "dos deltas, no uno combinado")
	assert.Equal(t, 5, movs[0].Quantity)
	assert.Equal(t, 3, movs[1].Quantity)
}

// El segundo renglón de un código repetido ve el stock que dejó el primero.
func TestRecordBatch_DuplicadoEnSalidaVeElStockRestante(t *testing.T) {
	store := newFakeStore()
	store.addBarcode("T-4004", 5)
	uc := newEngine(store)

	out, err := uc.RecordBatch(context.Background(), ledger.BatchInput{
		Kind: entity.MovementOutbound,
		Items: []ledger.BatchItem{
			{Barcode: "T-4004", Quantity: 4},
			{Barcode: "T-4004", Quantity: 3},
		},
		Operator:     testOperator,
		LicensePlate: "DEF-456",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.SuccessCount)
	require.Len(t, out.FailedItems, 1)
	assert.Equal(t, "stock insuficiente, stock actual: 1", out.FailedItems[0].Reason,
		"el segundo renglón valida contra el stock que dejó el primero")
	assert.Equal(t, 1, store.stockOf("T-4004"))
}

// En salidas por lote, una sola placa (y foto) se aplica a todos los renglones.
func TestRecordBatch_PlacaCompartidaEnSalidas(t *testing.T) {
	store := newFakeStore()
	store.addBarcode("T-5005", 10)
	store.addBarcode("T-6006", 10)
	uc := newEngine(store)

	_, err := uc.RecordBatch(context.Background(), ledger.BatchInput{
		Kind: entity.MovementOutbound,
		Items: []ledger.BatchItem{
			{Barcode: "T-5005", Quantity: 2, Remark: "pedido 88"},
			{Barcode: "T-6006", Quantity: 3},
		},
		Operator:          testOperator,
		LicensePlate:      "GHI-789",
		LicensePlateImage: "uploads/ghi789.jpg",
	})
	require.NoError(t, err)

	for _, code := range []string{"T-5005", "T-6006"} {
		movs := store.movementsOf(code)
		require.Len(t, movs, 1)
		assert.Equal(t, "GHI-789", movs[0].LicensePlate)
		assert.Equal(t, "uploads/ghi789.jpg", movs[0].LicensePlateImage)
	}
	movs := store.movementsOf("T-5005")
	assert.Equal(t, "pedido 88", movs[0].Remark, "la observación sí es por renglón")
}

// Un fallo de almacenamiento a mitad del lote revierte TODO, incluidos los
// renglones ya aplicados: el caller recibe error fatal, no éxito parcial.
func TestRecordBatch_FalloDeAlmacenamientoRevierteElLoteCompleto(t *testing.T) {
	store := newFakeStore()
	store.addBarcode("T-7007", 0)
	store.addBarcode("T-8008", 0)
	store.failOnCreate = 2 // el segundo insert del libro falla
	uc := newEngine(store)

	out, err := uc.RecordBatch(context.Background(), ledger.BatchInput{
		Kind: entity.MovementInbound,
		Items: []ledger.BatchItem{
			{Barcode: "T-7007", Quantity: 6},
			{Barcode: "T-8008", Quantity: 9},
		},
		Operator: testOperator,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errStorageFailure)
	assert.Nil(t, out, "un fallo fatal no devuelve resultado parcial")

	assert.Equal(t, 0, store.stockOf("T-7007"), "el renglón ya aplicado también se revierte")
	assert.Equal(t, 0, store.stockOf("T-8008"))
	assert.Empty(t, store.movementsOf("T-7007"))
	assert.Empty(t, store.movementsOf("T-8008"))
}

// El orden de procesamiento es el orden de entrada.
func TestRecordBatch_RespetaElOrdenDeEntrada(t *testing.T) {
	store := newFakeStore()
	store.addBarcode("T-9009", 3)
	uc := newEngine(store)

	out, err := uc.RecordBatch(context.Background(), ledger.BatchInput{
		Kind: entity.MovementOutbound,
		Items: []ledger.BatchItem{
			{Barcode: "T-9009", Quantity: 3}, // deja 0
			{Barcode: "T-9009", Quantity: 1}, // rechazado: ya no hay stock
		},
		Operator:     testOperator,
		LicensePlate: "JKL-000",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.SuccessCount)
	require.Len(t, out.FailedItems, 1)
	assert.Equal(t, "stock insuficiente, stock actual: 0", out.FailedItems[0].Reason)
	assert.Equal(t, 0, store.stockOf("T-9009"))
}
