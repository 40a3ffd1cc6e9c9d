package estimate_cost

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/pricing/models"
)

type PricingService interface {
	Estimate(ctx context.Context, durationHours int) (*models.EstimateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
