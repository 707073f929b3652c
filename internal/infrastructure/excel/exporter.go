package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jcastro/llantera-api/internal/application/usecase"
	"github.com/jcastro/llantera-api/internal/domain/entity"
	"github.com/jcastro/llantera-api/internal/domain/repository"
)

var _ usecase.RecordExporter = (*MovementExporter)(nil)

// MovementExporter genera un .xlsx con los asientos del libro de movimientos.
type MovementExporter struct{}

// NewMovementExporter construye el exportador.
func NewMovementExporter() *MovementExporter {
	return &MovementExporter{}
}

var headers = []string{
	"Fecha", "Tipo", "Código de barras", "Producto", "Modelo",
	"Cantidad", "Operador", "Placa", "Observación",
}

// Export serializa los asientos a un libro de Excel con encabezados en la
// primera fila.
func (e *MovementExporter) Export(items []*repository.MovementListItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Movimientos"
	f.SetSheetName("Sheet1", sheet)

	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("escribir encabezados: %w", err)
	}
	for i, it := range items {
		kind := "Entrada"
		if it.Kind == entity.MovementOutbound {
			kind = "Salida"
		}
		row := []any{
			it.CreatedAt.Format("2006-01-02 15:04:05"),
			kind,
			it.Barcode,
			it.ProductName,
			it.ProductModel,
			it.Quantity,
			it.OperatorName,
			it.LicensePlate,
			it.Remark,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("escribir fila: %w", err)
		}
	}
	if err := f.SetColWidth(sheet, "A", "A", 20); err != nil {
		return nil, fmt.Errorf("ancho de columna: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
