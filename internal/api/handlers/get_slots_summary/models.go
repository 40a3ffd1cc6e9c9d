package get_slots_summary

import (
	"math"
	"time"

	getDashboard "github.com/m04kA/SMC-ParkingService/internal/usecase/get_dashboard"
)

// SummaryResponse публичная краткая статистика
type SummaryResponse struct {
	TotalSlots    int       `json:"totalSlots"`
	Available     int       `json:"available"`
	Occupied      int       `json:"occupied"`
	OccupancyRate float64   `json:"occupancyRate"` // округлено до 0.1
	CurrentRate   float64   `json:"currentRate"`
	IsPeak        bool      `json:"isPeak"`
	TotalEarnings float64   `json:"totalEarnings"`
	Timestamp     time.Time `json:"timestamp"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDashboard.Response) *SummaryResponse {
	return &SummaryResponse{
		TotalSlots:    resp.TotalCapacity,
		Available:     resp.Statistics.Available,
		Occupied:      resp.Statistics.Occupied,
		OccupancyRate: math.Round(resp.Statistics.OccupancyRate*10) / 10,
		CurrentRate:   resp.Rate,
		IsPeak:        resp.IsPeak,
		TotalEarnings: resp.Statistics.TotalEarnings,
		Timestamp:     resp.GeneratedAt,
	}
}
