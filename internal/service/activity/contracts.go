package activity

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ActivityRepository интерфейс журнала действий
type ActivityRepository interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.ActivityLogEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
