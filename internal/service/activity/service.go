package activity

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/service/activity/models"
)

// Service сервис журнала действий
type Service struct {
	activityRepo ActivityRepository
	limit        int
	logger       Logger
}

// NewService создает новый экземпляр сервиса журнала
func NewService(activityRepo ActivityRepository, limit int, logger Logger) *Service {
	return &Service{
		activityRepo: activityRepo,
		limit:        limit,
		logger:       logger,
	}
}

// ListRecent возвращает последние записи журнала, новые первыми
func (s *Service) ListRecent(ctx context.Context) (*models.ActivityListResponse, error) {
	entries, err := s.activityRepo.ListRecent(ctx, s.limit)
	if err != nil {
		s.logger.Error("ListRecent: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRecent - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainActivityList(entries), nil
}
