package repository

import "context"

// StatsSummary totales para el panel de control.
type StatsSummary struct {
	ProductCount  int
	BarcodeCount  int
	TotalStock    int
	TodayInbound  int
	TotalInbound  int
	TodayOutbound int
	TotalOutbound int
	LowStockCount int // códigos con 0 < stock < umbral
}

// DailyVolume cantidad movida por día (tendencias).
type DailyVolume struct {
	Date  string // YYYY-MM-DD
	Total int
}

// TopProduct producto con más salidas.
type TopProduct struct {
	ProductID     string
	Name          string
	Model         string
	OutboundCount int
	TotalQuantity int
}

// StatsRepository consultas de solo lectura para el dashboard.
type StatsRepository interface {
	Summary(ctx context.Context) (*StatsSummary, error)
	// WeeklyTrend volumen diario de los últimos 7 días para un tipo de movimiento.
	WeeklyTrend(ctx context.Context, kind string) ([]DailyVolume, error)
	TopProducts(ctx context.Context, limit int) ([]TopProduct, error)
}
