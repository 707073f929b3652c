package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jcastro/llantera-api/internal/domain/entity"
	"github.com/jcastro/llantera-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos sobre PostgreSQL, con una tabla por tipo:
// inbound_records y outbound_records (esta última lleva placa y foto).
// Las filas solo se insertan, nunca se modifican ni se borran.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta un asiento en la tabla que corresponde a su tipo.
func (r *MovementRepo) Create(m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Kind == entity.MovementInbound {
		query := `
			INSERT INTO inbound_records (id, barcode_id, barcode, product_id, quantity, operator_id, operator_name, remark, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		_, err := r.q.Exec(context.Background(), query,
			m.ID, m.BarcodeID, m.Barcode, m.ProductID, m.Quantity, m.OperatorID, m.OperatorName, m.Remark, m.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("create inbound record: %w", err)
		}
		return nil
	}
	query := `
		INSERT INTO outbound_records (id, barcode_id, barcode, product_id, quantity, operator_id, operator_name, remark, license_plate, license_plate_image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.BarcodeID, m.Barcode, m.ProductID, m.Quantity, m.OperatorID, m.OperatorName, m.Remark,
		m.LicensePlate, m.LicensePlateImage, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create outbound record: %w", err)
	}
	return nil
}

// List lista asientos con filtros y total para paginar. Con Kind vacío
// mezcla entradas y salidas ordenadas por fecha.
func (r *MovementRepo) List(f repository.MovementFilter, limit, offset int) ([]*repository.MovementListItem, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	pos := 1
	if f.Barcode != "" {
		where += fmt.Sprintf(" AND r.barcode = $%d", pos)
		args = append(args, f.Barcode)
		pos++
	}
	if f.OperatorID != "" {
		where += fmt.Sprintf(" AND r.operator_id = $%d", pos)
		args = append(args, f.OperatorID)
		pos++
	}
	if f.From != nil {
		where += fmt.Sprintf(" AND r.created_at >= $%d", pos)
		args = append(args, *f.From)
		pos++
	}
	if f.To != nil {
		where += fmt.Sprintf(" AND r.created_at <= $%d", pos)
		args = append(args, *f.To)
		pos++
	}

	inbound := `
		SELECT r.id, 'inbound' AS kind, r.barcode_id, r.barcode, r.product_id, r.quantity,
			r.operator_id, r.operator_name, r.remark, '' AS license_plate, '' AS license_plate_image,
			r.created_at, COALESCE(p.name, '') AS product_name, COALESCE(p.model, '') AS product_model
		FROM inbound_records r
		LEFT JOIN products p ON p.id = r.product_id` + where
	outbound := `
		SELECT r.id, 'outbound' AS kind, r.barcode_id, r.barcode, r.product_id, r.quantity,
			r.operator_id, r.operator_name, r.remark, r.license_plate, r.license_plate_image,
			r.created_at, COALESCE(p.name, '') AS product_name, COALESCE(p.model, '') AS product_model
		FROM outbound_records r
		LEFT JOIN products p ON p.id = r.product_id` + where

	var base string
	switch f.Kind {
	case entity.MovementInbound:
		base = inbound
	case entity.MovementOutbound:
		base = outbound
	default:
		base = inbound + " UNION ALL " + outbound
	}

	countQuery := `SELECT COUNT(*) FROM (` + base + `) t`
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count records: %w", err)
	}

	query := `SELECT * FROM (` + base + `) t` +
		fmt.Sprintf(" ORDER BY t.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()
	var list []*repository.MovementListItem
	for rows.Next() {
		var it repository.MovementListItem
		if err := rows.Scan(
			&it.ID, &it.Kind, &it.BarcodeID, &it.Barcode, &it.ProductID, &it.Quantity,
			&it.OperatorID, &it.OperatorName, &it.Remark, &it.LicensePlate, &it.LicensePlateImage,
			&it.CreatedAt, &it.ProductName, &it.ProductModel,
		); err != nil {
			return nil, 0, fmt.Errorf("scan record: %w", err)
		}
		list = append(list, &it)
	}
	return list, total, rows.Err()
}
