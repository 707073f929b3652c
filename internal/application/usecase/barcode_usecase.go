package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/llantera-api/internal/application/dto"
	"github.com/jcastro/llantera-api/internal/domain"
	"github.com/jcastro/llantera-api/internal/domain/entity"
	"github.com/jcastro/llantera-api/internal/domain/repository"
	"github.com/jcastro/llantera-api/pkg/search"
)

// BarcodeUseCase administración del directorio de códigos de barras.
// El stock solo cambia por el motor de movimientos; aquí únicamente se fija
// el stock inicial al dar de alta.
type BarcodeUseCase struct {
	repo        repository.BarcodeRepository
	productRepo repository.ProductRepository
}

// NewBarcodeUseCase construye el caso de uso.
func NewBarcodeUseCase(repo repository.BarcodeRepository, productRepo repository.ProductRepository) *BarcodeUseCase {
	return &BarcodeUseCase{repo: repo, productRepo: productRepo}
}

// Create da de alta un código. El código debe ser único y el producto existir.
func (uc *BarcodeUseCase) Create(in dto.CreateBarcodeRequest) (*dto.BarcodeResponse, error) {
	in.Code = strings.TrimSpace(in.Code)
	if in.Code == "" || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	b := &entity.Barcode{
		ID:           uuid.New().String(),
		Code:         in.Code,
		ProductID:    in.ProductID,
		Stock:        in.Stock,
		Location:     in.Location,
		SupplierCode: in.SupplierCode,
		Remark:       in.Remark,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(b); err != nil {
		return nil, err
	}
	return toBarcodeResponse(b, product.Name, product.Model, product.Image), nil
}

// Scan busca un código con los datos de su producto. Es la consulta que usa
// la pistola lectora antes de registrar un movimiento.
func (uc *BarcodeUseCase) Scan(code string) (*dto.BarcodeResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.FindByCodeWithProduct(code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toBarcodeResponse(&item.Barcode, item.ProductName, item.ProductModel, item.ProductImage), nil
}

// List lista códigos con filtros por producto y búsqueda por texto.
func (uc *BarcodeUseCase) List(in dto.BarcodeFilterRequest) (*dto.BarcodeListResponse, error) {
	in.DefaultPage()
	f := repository.BarcodeFilter{
		ProductID: in.ProductID,
		Keyword:   search.Fold(in.Keyword),
	}
	items, total, err := uc.repo.List(f, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.BarcodeListResponse{
		Items: make([]dto.BarcodeResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}
	for _, it := range items {
		out.Items = append(out.Items, *toBarcodeResponse(&it.Barcode, it.ProductName, it.ProductModel, it.ProductImage))
	}
	return out, nil
}

// Update actualiza metadatos (ubicación, proveedor, observación). Nunca el stock.
func (uc *BarcodeUseCase) Update(id string, in dto.UpdateBarcodeRequest) (*dto.BarcodeResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	if in.Location != nil {
		b.Location = *in.Location
	}
	if in.SupplierCode != nil {
		b.SupplierCode = *in.SupplierCode
	}
	if in.Remark != nil {
		b.Remark = *in.Remark
	}
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(b); err != nil {
		return nil, err
	}
	return toBarcodeResponse(b, "", "", ""), nil
}

// Delete elimina un código. Se bloquea mientras quede stock registrado.
func (uc *BarcodeUseCase) Delete(id string) error {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	if b.Stock > 0 {
		return domain.ErrHasStock
	}
	return uc.repo.Delete(id)
}

func toBarcodeResponse(b *entity.Barcode, productName, productModel, productImage string) *dto.BarcodeResponse {
	if b == nil {
		return nil
	}
	return &dto.BarcodeResponse{
		ID:           b.ID,
		Code:         b.Code,
		ProductID:    b.ProductID,
		ProductName:  productName,
		ProductModel: productModel,
		ProductImage: productImage,
		Stock:        b.Stock,
		Location:     b.Location,
		SupplierCode: b.SupplierCode,
		Remark:       b.Remark,
		LastInbound:  b.LastInbound,
		LastOutbound: b.LastOutbound,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
