package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/llantera-api/internal/domain/entity"
	"github.com/jcastro/llantera-api/internal/domain/repository"
)

var _ repository.BarcodeRepository = (*BarcodeRepo)(nil)

// BarcodeRepo implementación de BarcodeRepository sobre PostgreSQL (usable con pool o tx).
type BarcodeRepo struct {
	q Querier
}

// NewBarcodeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBarcodeRepository(q Querier) *BarcodeRepo {
	return &BarcodeRepo{q: q}
}

const barcodeColumns = `id, code, product_id, stock, location, supplier_code, remark,
	last_inbound_time, last_outbound_time, created_at, updated_at`

// GetByCode obtiene un código de barras. Devuelve nil si no existe.
func (r *BarcodeRepo) GetByCode(code string) (*entity.Barcode, error) {
	query := `SELECT ` + barcodeColumns + ` FROM barcodes WHERE code = $1`
	return r.scanOne(query, code)
}

// GetByCodeForUpdate obtiene y bloquea la fila hasta el fin de la transacción.
func (r *BarcodeRepo) GetByCodeForUpdate(code string) (*entity.Barcode, error) {
	query := `SELECT ` + barcodeColumns + ` FROM barcodes WHERE code = $1 FOR UPDATE`
	return r.scanOne(query, code)
}

// UpdateStock persiste el contador y estampa la marca de tiempo del último
// movimiento según el tipo.
func (r *BarcodeRepo) UpdateStock(id string, stock int, kind string) error {
	var query string
	if kind == entity.MovementInbound {
		query = `UPDATE barcodes SET stock = $2, last_inbound_time = now(), updated_at = now() WHERE id = $1`
	} else {
		query = `UPDATE barcodes SET stock = $2, last_outbound_time = now(), updated_at = now() WHERE id = $1`
	}
	tag, err := r.q.Exec(context.Background(), query, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update stock: código %s no encontrado", id)
	}
	return nil
}

// Create persiste un código de barras nuevo.
func (r *BarcodeRepo) Create(b *entity.Barcode) error {
	query := `
		INSERT INTO barcodes (id, code, product_id, stock, location, supplier_code, remark, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Code, b.ProductID, b.Stock, b.Location, b.SupplierCode, b.Remark, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create barcode: código duplicado: %w", err)
		}
		return fmt.Errorf("create barcode: %w", err)
	}
	return nil
}

// GetByID obtiene un código por ID. Devuelve nil si no existe.
func (r *BarcodeRepo) GetByID(id string) (*entity.Barcode, error) {
	query := `SELECT ` + barcodeColumns + ` FROM barcodes WHERE id = $1`
	return r.scanOne(query, id)
}

// FindByCodeWithProduct obtiene un código con los datos de su producto.
func (r *BarcodeRepo) FindByCodeWithProduct(code string) (*repository.BarcodeListItem, error) {
	query := `
		SELECT b.id, b.code, b.product_id, b.stock, b.location, b.supplier_code, b.remark,
			b.last_inbound_time, b.last_outbound_time, b.created_at, b.updated_at,
			COALESCE(p.name, ''), COALESCE(p.model, ''), COALESCE(p.image, '')
		FROM barcodes b
		LEFT JOIN products p ON p.id = b.product_id
		WHERE b.code = $1`
	var it repository.BarcodeListItem
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&it.ID, &it.Code, &it.ProductID, &it.Stock, &it.Location, &it.SupplierCode, &it.Remark,
		&it.LastInbound, &it.LastOutbound, &it.CreatedAt, &it.UpdatedAt,
		&it.ProductName, &it.ProductModel, &it.ProductImage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find barcode with product: %w", err)
	}
	return &it, nil
}

// List lista códigos con filtros y total para paginar.
func (r *BarcodeRepo) List(f repository.BarcodeFilter, limit, offset int) ([]*repository.BarcodeListItem, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	pos := 1
	if f.ProductID != "" {
		where += fmt.Sprintf(" AND b.product_id = $%d", pos)
		args = append(args, f.ProductID)
		pos++
	}
	if f.Keyword != "" {
		where += fmt.Sprintf(" AND (lower(b.code) LIKE $%d OR %s LIKE $%d OR %s LIKE $%d)",
			pos, foldExpr("p.name"), pos, foldExpr("p.model"), pos)
		args = append(args, "%"+f.Keyword+"%")
		pos++
	}

	countQuery := `SELECT COUNT(*) FROM barcodes b LEFT JOIN products p ON p.id = b.product_id` + where
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count barcodes: %w", err)
	}

	query := `
		SELECT b.id, b.code, b.product_id, b.stock, b.location, b.supplier_code, b.remark,
			b.last_inbound_time, b.last_outbound_time, b.created_at, b.updated_at,
			COALESCE(p.name, ''), COALESCE(p.model, ''), COALESCE(p.image, '')
		FROM barcodes b
		LEFT JOIN products p ON p.id = b.product_id` + where +
		fmt.Sprintf(" ORDER BY b.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list barcodes: %w", err)
	}
	defer rows.Close()
	var list []*repository.BarcodeListItem
	for rows.Next() {
		var it repository.BarcodeListItem
		if err := rows.Scan(
			&it.ID, &it.Code, &it.ProductID, &it.Stock, &it.Location, &it.SupplierCode, &it.Remark,
			&it.LastInbound, &it.LastOutbound, &it.CreatedAt, &it.UpdatedAt,
			&it.ProductName, &it.ProductModel, &it.ProductImage,
		); err != nil {
			return nil, 0, fmt.Errorf("scan barcode: %w", err)
		}
		list = append(list, &it)
	}
	return list, total, rows.Err()
}

// Update persiste los metadatos editables de un código.
func (r *BarcodeRepo) Update(b *entity.Barcode) error {
	query := `
		UPDATE barcodes
		SET location = $2, supplier_code = $3, remark = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, b.ID, b.Location, b.SupplierCode, b.Remark, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update barcode: %w", err)
	}
	return nil
}

// Delete elimina un código por ID.
func (r *BarcodeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM barcodes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete barcode: %w", err)
	}
	return nil
}

// CountByProduct cuenta los códigos asociados a un producto.
func (r *BarcodeRepo) CountByProduct(productID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM barcodes WHERE product_id = $1`, productID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count barcodes by product: %w", err)
	}
	return count, nil
}

func (r *BarcodeRepo) scanOne(query string, arg any) (*entity.Barcode, error) {
	var b entity.Barcode
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&b.ID, &b.Code, &b.ProductID, &b.Stock, &b.Location, &b.SupplierCode, &b.Remark,
		&b.LastInbound, &b.LastOutbound, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get barcode: %w", err)
	}
	return &b, nil
}
