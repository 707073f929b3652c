package postgres

import (
	"context"
	"fmt"

	"github.com/jcastro/llantera-api/internal/domain/entity"
	"github.com/jcastro/llantera-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// lowStockThreshold por debajo de este stock un código cuenta como "por agotarse".
const lowStockThreshold = 10

// StatsRepo métricas agregadas del panel sobre PostgreSQL.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// Summary KPIs generales: conteos, stock total y volumen de hoy.
func (r *StatsRepo) Summary(ctx context.Context) (*repository.StatsSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM barcodes),
			(SELECT COALESCE(SUM(stock), 0) FROM barcodes),
			(SELECT COALESCE(SUM(quantity), 0) FROM inbound_records WHERE created_at >= date_trunc('day', now())),
			(SELECT COALESCE(SUM(quantity), 0) FROM inbound_records),
			(SELECT COALESCE(SUM(quantity), 0) FROM outbound_records WHERE created_at >= date_trunc('day', now())),
			(SELECT COALESCE(SUM(quantity), 0) FROM outbound_records),
			(SELECT COUNT(*) FROM barcodes WHERE stock < $1)`
	var s repository.StatsSummary
	err := r.q.QueryRow(ctx, query, lowStockThreshold).Scan(
		&s.ProductCount, &s.BarcodeCount, &s.TotalStock,
		&s.TodayInbound, &s.TotalInbound, &s.TodayOutbound, &s.TotalOutbound,
		&s.LowStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("stats summary: %w", err)
	}
	return &s, nil
}

// WeeklyTrend volumen diario de los últimos 7 días para un tipo de movimiento.
// Los días sin movimientos salen con total 0.
func (r *StatsRepo) WeeklyTrend(ctx context.Context, kind string) ([]repository.DailyVolume, error) {
	table := "inbound_records"
	if kind == entity.MovementOutbound {
		table = "outbound_records"
	}
	query := fmt.Sprintf(`
		SELECT to_char(d.day, 'YYYY-MM-DD'), COALESCE(SUM(r.quantity), 0)
		FROM generate_series(date_trunc('day', now()) - interval '6 days', date_trunc('day', now()), interval '1 day') AS d(day)
		LEFT JOIN %s r ON date_trunc('day', r.created_at) = d.day
		GROUP BY d.day
		ORDER BY d.day`, table)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("weekly trend: %w", err)
	}
	defer rows.Close()
	var list []repository.DailyVolume
	for rows.Next() {
		var v repository.DailyVolume
		if err := rows.Scan(&v.Date, &v.Total); err != nil {
			return nil, fmt.Errorf("scan trend: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// TopProducts los productos con más salidas, por cantidad total.
func (r *StatsRepo) TopProducts(ctx context.Context, limit int) ([]repository.TopProduct, error) {
	query := `
		SELECT r.product_id, COALESCE(p.name, ''), COALESCE(p.model, ''),
			COUNT(*), COALESCE(SUM(r.quantity), 0)
		FROM outbound_records r
		LEFT JOIN products p ON p.id = r.product_id
		GROUP BY r.product_id, p.name, p.model
		ORDER BY SUM(r.quantity) DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProduct
	for rows.Next() {
		var t repository.TopProduct
		if err := rows.Scan(&t.ProductID, &t.Name, &t.Model, &t.OutboundCount, &t.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
