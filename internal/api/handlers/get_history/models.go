package get_history

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// PointResponse точка тренда
type PointResponse struct {
	Time          time.Time `json:"time"`
	Label         string    `json:"label"` // "15:04:05"
	OccupancyRate float64   `json:"occupancyRate"`
	TotalEarnings float64   `json:"totalEarnings"`
}

// HistoryResponse тренд загрузки и выручки, старые точки первыми
type HistoryResponse struct {
	Capacity int             `json:"capacity"`
	Points   []PointResponse `json:"points"`
}

// FromDomainHistory конвертирует точки истории в DTO
func FromDomainHistory(points []domain.HistoryPoint, capacity int) *HistoryResponse {
	resp := &HistoryResponse{
		Capacity: capacity,
		Points:   make([]PointResponse, 0, len(points)),
	}

	for _, p := range points {
		resp.Points = append(resp.Points, PointResponse{
			Time:          p.Time,
			Label:         p.Time.Format(domain.TimeFormat),
			OccupancyRate: p.OccupancyRate,
			TotalEarnings: p.TotalEarnings,
		})
	}

	return resp
}
