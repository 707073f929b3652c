package usecase

import (
	"context"

	"github.com/jcastro/llantera-api/internal/application/dto"
	"github.com/jcastro/llantera-api/internal/domain/entity"
	"github.com/jcastro/llantera-api/internal/domain/repository"
)

// DashboardUseCase agrega las métricas del panel: resumen, tendencia
// semanal y Top-10 de productos por salidas.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(statsRepo repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo}
}

// Summary KPIs generales del almacén.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	s, err := uc.statsRepo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardSummaryDTO{
		ProductCount:  s.ProductCount,
		BarcodeCount:  s.BarcodeCount,
		TotalStock:    s.TotalStock,
		TodayInbound:  s.TodayInbound,
		TotalInbound:  s.TotalInbound,
		TodayOutbound: s.TodayOutbound,
		TotalOutbound: s.TotalOutbound,
		LowStockCount: s.LowStockCount,
	}, nil
}

// Trend series diarias de entradas y salidas de los últimos 7 días.
func (uc *DashboardUseCase) Trend(ctx context.Context) (*dto.TrendDTO, error) {
	inbound, err := uc.statsRepo.WeeklyTrend(ctx, entity.MovementInbound)
	if err != nil {
		return nil, err
	}
	outbound, err := uc.statsRepo.WeeklyTrend(ctx, entity.MovementOutbound)
	if err != nil {
		return nil, err
	}
	return &dto.TrendDTO{
		Inbound:  toDailyVolumes(inbound),
		Outbound: toDailyVolumes(outbound),
	}, nil
}

// TopProducts los 10 productos con más salidas.
func (uc *DashboardUseCase) TopProducts(ctx context.Context) ([]dto.TopProductDTO, error) {
	tops, err := uc.statsRepo.TopProducts(ctx, 10)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductDTO, 0, len(tops))
	for _, t := range tops {
		out = append(out, dto.TopProductDTO{
			ProductID:     t.ProductID,
			Name:          t.Name,
			Model:         t.Model,
			OutboundCount: t.OutboundCount,
			TotalQuantity: t.TotalQuantity,
		})
	}
	return out, nil
}

func toDailyVolumes(vols []repository.DailyVolume) []dto.DailyVolumeDTO {
	out := make([]dto.DailyVolumeDTO, 0, len(vols))
	for _, v := range vols {
		out = append(out, dto.DailyVolumeDTO{Date: v.Date, Total: v.Total})
	}
	return out
}
