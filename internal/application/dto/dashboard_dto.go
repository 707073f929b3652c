package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del almacén: totales generales y volumen del día.
type DashboardSummaryDTO struct {
	ProductCount  int `json:"product_count"`
	BarcodeCount  int `json:"barcode_count"`
	TotalStock    int `json:"total_stock"`
	TodayInbound  int `json:"today_inbound"`
	TotalInbound  int `json:"total_inbound"`
	TodayOutbound int `json:"today_outbound"`
	TotalOutbound int `json:"total_outbound"`
	LowStockCount int `json:"low_stock_count"`
}

// DailyVolumeDTO volumen movido en un día (para la gráfica de 7 días).
type DailyVolumeDTO struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Total int    `json:"total"`
}

// TrendDTO series de entradas y salidas de la última semana.
type TrendDTO struct {
	Inbound  []DailyVolumeDTO `json:"inbound"`
	Outbound []DailyVolumeDTO `json:"outbound"`
}

// TopProductDTO un producto del Top-10 por salidas.
type TopProductDTO struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	Model         string `json:"model"`
	OutboundCount int    `json:"outbound_count"`
	TotalQuantity int    `json:"total_quantity"`
}
