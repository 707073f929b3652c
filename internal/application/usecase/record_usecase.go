package usecase

import (
	"strings"
	"time"

	"github.com/jcastro/llantera-api/internal/application/dto"
	"github.com/jcastro/llantera-api/internal/domain"
	"github.com/jcastro/llantera-api/internal/domain/entity"
	"github.com/jcastro/llantera-api/internal/domain/repository"
)

// RecordExporter serializa un listado de asientos a un archivo descargable.
type RecordExporter interface {
	Export(items []*repository.MovementListItem) ([]byte, error)
}

// RecordUseCase consultas de solo lectura sobre el libro de movimientos.
type RecordUseCase struct {
	repo     repository.MovementRepository
	exporter RecordExporter
}

// NewRecordUseCase construye el caso de uso.
func NewRecordUseCase(repo repository.MovementRepository, exporter RecordExporter) *RecordUseCase {
	return &RecordUseCase{repo: repo, exporter: exporter}
}

// exportLimit tope de filas para exportar a Excel.
const exportLimit = 10000

// List lista asientos del libro con filtros y paginación.
func (uc *RecordUseCase) List(in dto.RecordFilterRequest) (*dto.RecordListResponse, error) {
	f, err := buildMovementFilter(in)
	if err != nil {
		return nil, err
	}
	in.DefaultPage()
	items, total, err := uc.repo.List(f, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.RecordListResponse{
		Items: make([]dto.RecordResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}
	for _, it := range items {
		out.Items = append(out.Items, toRecordResponse(it))
	}
	return out, nil
}

// Export genera un .xlsx con los asientos que cumplen el filtro.
func (uc *RecordUseCase) Export(in dto.RecordFilterRequest) ([]byte, error) {
	f, err := buildMovementFilter(in)
	if err != nil {
		return nil, err
	}
	items, _, err := uc.repo.List(f, exportLimit, 0)
	if err != nil {
		return nil, err
	}
	return uc.exporter.Export(items)
}

func buildMovementFilter(in dto.RecordFilterRequest) (repository.MovementFilter, error) {
	f := repository.MovementFilter{
		Barcode:    strings.TrimSpace(in.Barcode),
		OperatorID: in.OperatorID,
	}
	if in.Kind != "" {
		if !entity.ValidMovementKind(in.Kind) {
			return f, domain.ErrInvalidInput
		}
		f.Kind = in.Kind
	}
	if in.From != "" {
		t, err := time.Parse("2006-01-02", in.From)
		if err != nil {
			return f, domain.ErrInvalidInput
		}
		f.From = &t
	}
	if in.To != "" {
		t, err := time.Parse("2006-01-02", in.To)
		if err != nil {
			return f, domain.ErrInvalidInput
		}
		// el filtro es inclusivo: hasta el final del día
		end := t.Add(24*time.Hour - time.Nanosecond)
		f.To = &end
	}
	return f, nil
}

func toRecordResponse(it *repository.MovementListItem) dto.RecordResponse {
	return dto.RecordResponse{
		ID:                it.ID,
		Kind:              it.Kind,
		Barcode:           it.Barcode,
		ProductName:       it.ProductName,
		ProductModel:      it.ProductModel,
		Quantity:          it.Quantity,
		OperatorID:        it.OperatorID,
		OperatorName:      it.OperatorName,
		Remark:            it.Remark,
		LicensePlate:      it.LicensePlate,
		LicensePlateImage: it.LicensePlateImage,
		CreatedAt:         it.CreatedAt,
	}
}
