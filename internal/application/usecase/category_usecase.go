package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/llantera-api/internal/application/dto"
	"github.com/jcastro/llantera-api/internal/domain"
	"github.com/jcastro/llantera-api/internal/domain/entity"
	"github.com/jcastro/llantera-api/internal/domain/repository"
)

// CategoryUseCase casos de uso del árbol de categorías: rin > medida > marca.
type CategoryUseCase struct {
	repo        repository.CategoryRepository
	productRepo repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, productRepo: productRepo}
}

// Create crea una categoría. Nivel 1 sin padre; niveles 2 y 3 requieren un
// padre existente del nivel inmediato superior.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" || in.Level < entity.CategoryLevelMin || in.Level > entity.CategoryLevelMax {
		return nil, domain.ErrInvalidInput
	}
	if in.Level == entity.CategoryLevelMin {
		if in.ParentID != "" {
			return nil, domain.ErrInvalidInput
		}
	} else {
		if in.ParentID == "" {
			return nil, domain.ErrInvalidInput
		}
		parent, err := uc.repo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.Level != in.Level-1 {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	cat := &entity.Category{
		ID:        uuid.New().String(),
		Level:     in.Level,
		ParentID:  in.ParentID,
		Name:      in.Name,
		SortOrder: in.SortOrder,
		Status:    entity.CategoryActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// ListByLevel lista categorías activas de un nivel, opcionalmente bajo un padre.
func (uc *CategoryUseCase) ListByLevel(level int, parentID string) ([]dto.CategoryResponse, error) {
	if level < entity.CategoryLevelMin || level > entity.CategoryLevelMax {
		return nil, domain.ErrInvalidInput
	}
	cats, err := uc.repo.ListByLevel(level, parentID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// Tree arma el árbol completo de tres niveles a partir de las categorías
// activas, anidando por parent_id y respetando sort_order (orden del repo).
func (uc *CategoryUseCase) Tree() (*dto.CategoryTreeResponse, error) {
	cats, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	byParent := make(map[string][]*entity.Category)
	for _, c := range cats {
		byParent[c.ParentID] = append(byParent[c.ParentID], c)
	}
	var build func(parentID string, level int) []dto.CategoryNode
	build = func(parentID string, level int) []dto.CategoryNode {
		var nodes []dto.CategoryNode
		for _, c := range byParent[parentID] {
			if c.Level != level {
				continue
			}
			node := dto.CategoryNode{CategoryResponse: *toCategoryResponse(c)}
			if level < entity.CategoryLevelMax {
				node.Children = build(c.ID, level+1)
			}
			nodes = append(nodes, node)
		}
		return nodes
	}
	return &dto.CategoryTreeResponse{Tree: build("", entity.CategoryLevelMin)}, nil
}

// Update renombra, reordena o activa/desactiva una categoría.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		cat.Name = *in.Name
	}
	if in.SortOrder != nil {
		cat.SortOrder = *in.SortOrder
	}
	if in.Status != nil {
		if *in.Status != entity.CategoryActive && *in.Status != entity.CategoryInactive {
			return nil, domain.ErrInvalidInput
		}
		cat.Status = *in.Status
	}
	cat.UpdatedAt = time.Now()
	if err := uc.repo.Update(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// Delete elimina una categoría. Se bloquea si tiene hijas o productos asociados.
func (uc *CategoryUseCase) Delete(id string) error {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	children, err := uc.repo.CountChildren(id)
	if err != nil {
		return err
	}
	if children > 0 {
		return domain.ErrInUse
	}
	products, err := uc.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if products > 0 {
		return domain.ErrInUse
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Level:     c.Level,
		ParentID:  c.ParentID,
		Name:      c.Name,
		SortOrder: c.SortOrder,
		Status:    c.Status,
	}
}
