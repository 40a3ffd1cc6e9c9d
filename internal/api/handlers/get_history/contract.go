package get_history

import "github.com/m04kA/SMC-ParkingService/internal/domain"

type HistoryReader interface {
	Points() []domain.HistoryPoint
	Cap() int
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
