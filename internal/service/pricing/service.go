package pricing

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	rateEngine "github.com/m04kA/SMC-ParkingService/internal/pricing"
	"github.com/m04kA/SMC-ParkingService/internal/service/pricing/models"
)

// Service сервис тарифов
type Service struct {
	config       domain.PricingConfig
	minDuration  int
	maxDuration  int
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса тарифов
// minDuration и maxDuration ограничивают длительность при оценке стоимости
func NewService(
	config domain.PricingConfig,
	minDuration int,
	maxDuration int,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		config:       config,
		minDuration:  minDuration,
		maxDuration:  maxDuration,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Current возвращает действующий тариф и конфигурацию тарификации
func (s *Service) Current(ctx context.Context) *models.PricingResponse {
	now := s.timeProvider.Now()
	return models.FromDomainPricing(s.config, now, rateEngine.DynamicRate(now, s.config), rateEngine.IsPeak(now, s.config))
}

// Estimate оценивает стоимость бронирования на durationHours по текущему тарифу
func (s *Service) Estimate(ctx context.Context, durationHours int) (*models.EstimateResponse, error) {
	if durationHours < s.minDuration || durationHours > s.maxDuration {
		s.logger.Warn("Estimate: duration=%d out of range [%d, %d]", durationHours, s.minDuration, s.maxDuration)
		return nil, fmt.Errorf("%w: durationHours must be between %d and %d", ErrInvalidInput, s.minDuration, s.maxDuration)
	}

	now := s.timeProvider.Now()
	rate := rateEngine.DynamicRate(now, s.config)

	return &models.EstimateResponse{
		DurationHours: durationHours,
		Rate:          rate,
		IsPeak:        rateEngine.IsPeak(now, s.config),
		Cost:          rateEngine.EstimateCost(now, durationHours, s.config),
		Currency:      s.config.Currency,
		Timestamp:     now,
	}, nil
}
