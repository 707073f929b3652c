package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/llantera-api/internal/application/dto"
	"github.com/jcastro/llantera-api/internal/domain"
	"github.com/jcastro/llantera-api/internal/domain/entity"
	"github.com/jcastro/llantera-api/internal/domain/repository"
	"github.com/jcastro/llantera-api/pkg/search"
)

// ProductUseCase casos de uso CRUD para el catálogo de llantas.
// El stock NO vive aquí: se maneja vía el motor de movimientos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	barcodeRepo  repository.BarcodeRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, barcodeRepo repository.BarcodeRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, barcodeRepo: barcodeRepo}
}

// Create crea un producto. Valida que las categorías referidas existan.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, catID := range []string{in.Category1ID, in.Category2ID, in.Category3ID} {
		if catID == "" {
			continue
		}
		cat, err := uc.categoryRepo.GetByID(catID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Model:       in.Model,
		Category1ID: in.Category1ID,
		Category2ID: in.Category2ID,
		Category3ID: in.Category3ID,
		Price:       in.Price,
		Image:       in.Image,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Detail obtiene un producto junto con todos sus códigos de barras.
func (uc *ProductUseCase) Detail(id string) (*dto.ProductDetailResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	items, _, err := uc.barcodeRepo.List(repository.BarcodeFilter{ProductID: id}, 500, 0)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductDetailResponse{
		ProductResponse: *toProductResponse(product),
		Barcodes:        make([]dto.BarcodeResponse, 0, len(items)),
	}
	for _, it := range items {
		out.Barcodes = append(out.Barcodes, *toBarcodeResponse(&it.Barcode, it.ProductName, it.ProductModel, it.ProductImage))
	}
	return out, nil
}

// List lista productos con filtros de categoría y búsqueda por texto.
// El keyword se normaliza (minúsculas, sin acentos) antes de consultar.
func (uc *ProductUseCase) List(in dto.ProductFilterRequest) (*dto.ProductListResponse, error) {
	in.DefaultPage()
	f := repository.ProductFilter{
		Category1ID: in.Category1ID,
		Category2ID: in.Category2ID,
		Category3ID: in.Category3ID,
		Keyword:     search.Fold(in.Keyword),
	}
	items, total, err := uc.repo.List(f, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}
	for _, p := range items {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out, nil
}

// Update actualiza los campos enviados de un producto.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Model != nil {
		product.Model = *in.Model
	}
	if in.Category1ID != nil {
		product.Category1ID = *in.Category1ID
	}
	if in.Category2ID != nil {
		product.Category2ID = *in.Category2ID
	}
	if in.Category3ID != nil {
		product.Category3ID = *in.Category3ID
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Se bloquea si aún tiene códigos de barras.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	count, err := uc.barcodeRepo.CountByProduct(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrInUse
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Model:       p.Model,
		Category1ID: p.Category1ID,
		Category2ID: p.Category2ID,
		Category3ID: p.Category3ID,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
