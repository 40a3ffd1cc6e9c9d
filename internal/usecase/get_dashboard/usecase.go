package get_dashboard

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/alerts"
	"github.com/m04kA/SMC-ParkingService/internal/billing"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/pricing"
	"github.com/m04kA/SMC-ParkingService/internal/statistics"
)

// UseCase use case расчета дашборда парковки
type UseCase struct {
	slotRepo     SlotRepository
	rnd          RandomSource
	board        AlertBoard
	history      HistoryRecorder
	metrics      Metrics
	timeProvider TimeProvider
	config       Config
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	rnd RandomSource,
	board AlertBoard,
	history HistoryRecorder,
	metrics Metrics,
	timeProvider TimeProvider,
	config Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		rnd:          rnd,
		board:        board,
		history:      history,
		metrics:      metrics,
		timeProvider: timeProvider,
		config:       config,
		logger:       logger,
	}
}

// Execute считает дашборд и обновляет доску алертов, историю и метрики
// Ошибка чтения слотов не возвращается как error: ответ помечается DataAvailable = false,
// а состояние доски и истории не меняется.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	resp := uc.compute(ctx)
	if !resp.DataAvailable {
		return resp, nil
	}

	resp.Alerts = alerts.Evaluate(resp.Statistics, resp.GeneratedAt, uc.config.Pricing, uc.config.Thresholds)

	uc.board.Replace(resp.Alerts)
	uc.history.Push(domain.HistoryPoint{
		Time:          resp.GeneratedAt,
		OccupancyRate: resp.Statistics.OccupancyRate,
		TotalEarnings: resp.Statistics.TotalEarnings,
	})
	uc.metrics.SetOccupancy(resp.Statistics.OccupancyRate)
	uc.metrics.SetActiveAlerts(alerts.Kinds, alerts.CountByKind(resp.Alerts))

	uc.logger.Info("GetDashboard: occupied=%d/%d, occupancy=%.1f%%, alerts=%d",
		resp.Statistics.Occupied, uc.config.TotalCapacity, resp.Statistics.OccupancyRate, len(resp.Alerts))

	return resp, nil
}

// Summary считает дашборд без побочных эффектов (для публичной статистики)
func (uc *UseCase) Summary(ctx context.Context) (*Response, error) {
	return uc.compute(ctx), nil
}

func (uc *UseCase) compute(ctx context.Context) *Response {
	now := uc.timeProvider.Now()

	resp := &Response{
		GeneratedAt:   now,
		Rate:          pricing.DynamicRate(now, uc.config.Pricing),
		IsPeak:        pricing.IsPeak(now, uc.config.Pricing),
		Currency:      uc.config.Pricing.Currency,
		TotalCapacity: uc.config.TotalCapacity,
	}

	// 1. Снимок слотов
	slots, err := uc.slotRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetDashboard: failed to read slots: %v", err)
		resp.Reason = ErrDataUnavailable.Error()
		return resp
	}

	// 2. Тарификация
	billed := billing.BillSnapshot(slots, now, uc.config.Pricing)
	for _, b := range billed {
		if b.ClockAnomaly {
			uc.logger.Warn("GetDashboard: slot %s has entry time in the future (%s), duration clamped to 0",
				b.Slot.ID, b.Slot.EntryTime.Format(domain.DateTimeFormat))
		}
	}

	// 3. Агрегация
	resp.DataAvailable = true
	resp.Slots = billed
	resp.Statistics = statistics.Aggregate(billed, uc.config.TotalCapacity, uc.rnd)
	resp.Zones = statistics.ZoneBreakdown(billed)

	return resp
}
