package get_dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetAll(ctx context.Context) ([]domain.Slot, error)
}

// RandomSource источник случайных значений для симулированных метрик
type RandomSource interface {
	Float64() float64
}

// AlertBoard хранилище алертов последнего расчета
type AlertBoard interface {
	Replace(alerts []domain.Alert)
}

// HistoryRecorder буфер истории загрузки и выручки
type HistoryRecorder interface {
	Push(p domain.HistoryPoint)
}

// Metrics gauge метрики дашборда
type Metrics interface {
	SetOccupancy(rate float64)
	SetActiveAlerts(kinds []string, counts map[string]int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
