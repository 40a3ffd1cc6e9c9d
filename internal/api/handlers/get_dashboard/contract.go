package get_dashboard

import (
	"context"

	getDashboard "github.com/m04kA/SMC-ParkingService/internal/usecase/get_dashboard"
)

type GetDashboardUseCase interface {
	Execute(ctx context.Context) (*getDashboard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
