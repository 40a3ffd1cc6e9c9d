package get_dashboard

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Config параметры расчета дашборда
type Config struct {
	Pricing       domain.PricingConfig
	Thresholds    domain.AlertThresholds
	TotalCapacity int
}

// Response модель ответа дашборда
// При DataAvailable = false заполнены только GeneratedAt, Rate, IsPeak и Reason
type Response struct {
	DataAvailable bool
	Reason        string
	GeneratedAt   time.Time
	Rate          float64
	IsPeak        bool
	Currency      string
	TotalCapacity int
	Slots         []domain.BilledSlot
	Statistics    domain.Statistics
	Zones         []domain.ZoneAvailability
	Alerts        []domain.Alert
}
