package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/llantera-api/internal/domain/entity"
	"github.com/jcastro/llantera-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo catálogo de productos sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, model, category1_id, category2_id, category3_id,
	price, image, description, created_at, updated_at`

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Model, p.Category1ID, p.Category2ID, p.Category3ID,
		p.Price, p.Image, p.Description, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Model, &p.Category1ID, &p.Category2ID, &p.Category3ID,
		&p.Price, &p.Image, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos con filtros y total para paginar.
func (r *ProductRepo) List(f repository.ProductFilter, limit, offset int) ([]*entity.Product, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	pos := 1
	if f.Category1ID != "" {
		where += fmt.Sprintf(" AND category1_id = $%d", pos)
		args = append(args, f.Category1ID)
		pos++
	}
	if f.Category2ID != "" {
		where += fmt.Sprintf(" AND category2_id = $%d", pos)
		args = append(args, f.Category2ID)
		pos++
	}
	if f.Category3ID != "" {
		where += fmt.Sprintf(" AND category3_id = $%d", pos)
		args = append(args, f.Category3ID)
		pos++
	}
	if f.Keyword != "" {
		// El término llega plegado desde el caso de uso; la columna se pliega
		// aquí para que "Neumático" almacenado coincida con "neumatico".
		where += fmt.Sprintf(" AND (%s LIKE $%d OR %s LIKE $%d)",
			foldExpr("name"), pos, foldExpr("model"), pos)
		args = append(args, "%"+f.Keyword+"%")
		pos++
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM products`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM products` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Model, &p.Category1ID, &p.Category2ID, &p.Category3ID,
			&p.Price, &p.Image, &p.Description, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

// Update persiste los campos editables de un producto.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, model = $3, category1_id = $4, category2_id = $5, category3_id = $6,
			price = $7, image = $8, description = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Model, p.Category1ID, p.Category2ID, p.Category3ID,
		p.Price, p.Image, p.Description, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// CountByCategory cuenta productos asociados a una categoría en cualquiera de los tres niveles.
func (r *ProductRepo) CountByCategory(categoryID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM products
		WHERE category1_id = $1 OR category2_id = $1 OR category3_id = $1`
	var count int
	if err := r.q.QueryRow(context.Background(), query, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return count, nil
}
