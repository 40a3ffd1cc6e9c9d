package list_activity

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/activity/models"
)

type ActivityService interface {
	ListRecent(ctx context.Context) (*models.ActivityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
