package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/llantera-api/internal/domain/entity"
	"github.com/jcastro/llantera-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo árbol de categorías sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id, level, parent_id, name, sort_order, status, created_at, updated_at`

// Create persiste una categoría nueva.
func (r *CategoryRepo) Create(c *entity.Category) error {
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Level, c.ParentID, c.Name, c.SortOrder, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. Devuelve nil si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Level, &c.ParentID, &c.Name, &c.SortOrder, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// ListByLevel lista categorías activas de un nivel, opcionalmente bajo un padre.
func (r *CategoryRepo) ListByLevel(level int, parentID string) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE level = $1 AND status = $2`
	args := []any{level, entity.CategoryActive}
	if parentID != "" {
		query += " AND parent_id = $3"
		args = append(args, parentID)
	}
	query += " ORDER BY sort_order, name"
	return r.list(query, args...)
}

// ListActive devuelve todas las categorías activas ordenadas para armar el árbol.
func (r *CategoryRepo) ListActive() ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE status = $1 ORDER BY level, sort_order, name`
	return r.list(query, entity.CategoryActive)
}

// Update persiste nombre, orden y estado de una categoría.
func (r *CategoryRepo) Update(c *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $2, sort_order = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Name, c.SortOrder, c.Status, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// CountChildren cuenta las categorías hijas directas.
func (r *CategoryRepo) CountChildren(id string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM categories WHERE parent_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count children: %w", err)
	}
	return count, nil
}

func (r *CategoryRepo) list(query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Level, &c.ParentID, &c.Name, &c.SortOrder, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
