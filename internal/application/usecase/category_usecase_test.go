package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/llantera-api/internal/application/dto"
	"github.com/jcastro/llantera-api/internal/application/usecase"
	"github.com/jcastro/llantera-api/internal/domain"
	"github.com/jcastro/llantera-api/internal/domain/entity"
	"github.com/jcastro/llantera-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	cats map[string]*entity.Category
}

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{cats: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.cats[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.cats[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) ListByLevel(level int, parentID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.cats {
		if c.Level != level || c.Status != entity.CategoryActive {
			continue
		}
		if parentID != "" && c.ParentID != parentID {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCategoryRepo) ListActive() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.cats {
		if c.Status == entity.CategoryActive {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.cats[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.cats, id)
	return nil
}

func (r *fakeCategoryRepo) CountChildren(id string) (int, error) {
	n := 0
	for _, c := range r.cats {
		if c.ParentID == id {
			n++
		}
	}
	return n, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(f repository.ProductFilter, limit, offset int) ([]*entity.Product, int, error) {
	var out []*entity.Product
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) CountByCategory(categoryID string) (int, error) {
	n := 0
	for _, p := range r.products {
		if p.Category1ID == categoryID || p.Category2ID == categoryID || p.Category3ID == categoryID {
			n++
		}
	}
	return n, nil
}

func addCategory(r *fakeCategoryRepo, id string, level int, parentID, name string) {
	now := time.Now()
	r.cats[id] = &entity.Category{
		ID: id, Level: level, ParentID: parentID, Name: name,
		Status: entity.CategoryActive, CreatedAt: now, UpdatedAt: now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryCreate_ValidaNivelYPadre(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo, newFakeProductRepo())

	// Nivel 1 con padre: inválido
	_, err := uc.Create(dto.CreateCategoryRequest{Level: 1, ParentID: "x", Name: "Rin 15"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Nivel 2 sin padre: inválido
	_, err = uc.Create(dto.CreateCategoryRequest{Level: 2, Name: "205/55R15"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Nivel 2 con padre de nivel 1: válido
	rin, err := uc.Create(dto.CreateCategoryRequest{Level: 1, Name: "Rin 15"})
	require.NoError(t, err)
	medida, err := uc.Create(dto.CreateCategoryRequest{Level: 2, ParentID: rin.ID, Name: "205/55R15"})
	require.NoError(t, err)
	assert.Equal(t, rin.ID, medida.ParentID)

	// Nivel 3 con padre de nivel 1 (saltando nivel): inválido
	_, err = uc.Create(dto.CreateCategoryRequest{Level: 3, ParentID: rin.ID, Name: "Michelin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryTree_AnidaTresNiveles(t *testing.T) {
	repo := newFakeCategoryRepo()
	addCategory(repo, "r15", 1, "", "Rin 15")
	addCategory(repo, "m205", 2, "r15", "205/55R15")
	addCategory(repo, "michelin", 3, "m205", "Michelin")
	addCategory(repo, "goodyear", 3, "m205", "Goodyear")
	uc := usecase.NewCategoryUseCase(repo, newFakeProductRepo())

	out, err := uc.Tree()
	require.NoError(t, err)
	require.Len(t, out.Tree, 1, "un solo rin en la raíz")

	rin := out.Tree[0]
	assert.Equal(t, "Rin 15", rin.Name)
	require.Len(t, rin.Children, 1)

	medida := rin.Children[0]
	assert.Equal(t, "205/55R15", medida.Name)
	assert.Len(t, medida.Children, 2, "dos marcas bajo la medida")
}

func TestCategoryTree_IgnoraInactivas(t *testing.T) {
	repo := newFakeCategoryRepo()
	addCategory(repo, "r15", 1, "", "Rin 15")
	addCategory(repo, "r16", 1, "", "Rin 16")
	repo.cats["r16"].Status = entity.CategoryInactive
	uc := usecase.NewCategoryUseCase(repo, newFakeProductRepo())

	out, err := uc.Tree()
	require.NoError(t, err)
	require.Len(t, out.Tree, 1)
	assert.Equal(t, "Rin 15", out.Tree[0].Name)
}

func TestCategoryDelete_BloqueadaConHijasOProductos(t *testing.T) {
	repo := newFakeCategoryRepo()
	products := newFakeProductRepo()
	addCategory(repo, "r15", 1, "", "Rin 15")
	addCategory(repo, "m205", 2, "r15", "205/55R15")
	uc := usecase.NewCategoryUseCase(repo, products)

	// Con hija: bloqueada
	err := uc.Delete("r15")
	assert.ErrorIs(t, err, domain.ErrInUse)

	// Con producto asociado: bloqueada
	products.products["p1"] = &entity.Product{ID: "p1", Name: "Llanta X", Category2ID: "m205"}
	err = uc.Delete("m205")
	assert.ErrorIs(t, err, domain.ErrInUse)

	// Sin hijas ni productos: se elimina
	delete(products.products, "p1")
	err = uc.Delete("m205")
	require.NoError(t, err)
	got, _ := repo.GetByID("m205")
	assert.Nil(t, got)
}

func TestCategoryDelete_NoExiste(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), newFakeProductRepo())
	err := uc.Delete("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
