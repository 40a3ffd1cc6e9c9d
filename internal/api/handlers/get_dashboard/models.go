package get_dashboard

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	getDashboard "github.com/m04kA/SMC-ParkingService/internal/usecase/get_dashboard"
)

// SlotResponse слот с текущими начислениями
type SlotResponse struct {
	ID            string     `json:"id"`
	Zone          string     `json:"zone"`
	Status        string     `json:"status"`
	IsReserved    bool       `json:"isReserved"`
	VehicleType   *string    `json:"vehicleType,omitempty"`
	LicensePlate  *string    `json:"licensePlate,omitempty"`
	CustomerID    *string    `json:"customerId,omitempty"`
	EntryTime     *time.Time `json:"entryTime,omitempty"`
	Duration      string     `json:"duration"`
	DurationHours float64    `json:"durationHours"`
	Rate          float64    `json:"rate"`
	BillableHours int64      `json:"billableHours"`
	Fee           float64    `json:"fee"`
	Fine          float64    `json:"fine"`
	Total         float64    `json:"total"`
	ClockAnomaly  bool       `json:"clockAnomaly,omitempty"`
}

// StatisticsResponse агрегированная статистика
type StatisticsResponse struct {
	Occupied         int     `json:"occupied"`
	Available        int     `json:"available"`
	Reserved         int     `json:"reserved"`
	Maintenance      int     `json:"maintenance"`
	OccupancyRate    float64 `json:"occupancyRate"`
	TotalFee         float64 `json:"totalFee"`
	TotalFine        float64 `json:"totalFine"`
	TotalEarnings    float64 `json:"totalEarnings"`
	AvgDurationHours float64 `json:"avgDurationHours"`
	OverstayCount    int     `json:"overstayCount"`
	TurnoverRate     float64 `json:"turnoverRate"`
	AvgWaitMinutes   float64 `json:"avgWaitMinutes"`
}

// ZoneResponse доступность по зоне
type ZoneResponse struct {
	Zone       string  `json:"zone"`
	Available  int     `json:"available"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// AlertResponse алерт
type AlertResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Time    string `json:"time"` // "15:04:05"
}

// DashboardResponse HTTP response model
type DashboardResponse struct {
	DataAvailable bool               `json:"dataAvailable"`
	GeneratedAt   time.Time          `json:"generatedAt"`
	Rate          float64            `json:"rate"`
	IsPeak        bool               `json:"isPeak"`
	Currency      string             `json:"currency"`
	TotalCapacity int                `json:"totalCapacity"`
	Slots         []SlotResponse     `json:"slots"`
	Statistics    StatisticsResponse `json:"statistics"`
	Zones         []ZoneResponse     `json:"zones"`
	Alerts        []AlertResponse    `json:"alerts"`
}

// DegradedResponse ответ при недоступности данных о слотах
type DegradedResponse struct {
	DataAvailable bool      `json:"dataAvailable"`
	Reason        string    `json:"reason"`
	Error         string    `json:"error"`
	GeneratedAt   time.Time `json:"generatedAt"`
	Rate          float64   `json:"rate"`
	IsPeak        bool      `json:"isPeak"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDashboard.Response) *DashboardResponse {
	out := &DashboardResponse{
		DataAvailable: resp.DataAvailable,
		GeneratedAt:   resp.GeneratedAt,
		Rate:          resp.Rate,
		IsPeak:        resp.IsPeak,
		Currency:      resp.Currency,
		TotalCapacity: resp.TotalCapacity,
		Slots:         make([]SlotResponse, 0, len(resp.Slots)),
		Statistics:    FromDomainStatistics(resp.Statistics),
		Zones:         make([]ZoneResponse, 0, len(resp.Zones)),
		Alerts:        make([]AlertResponse, 0, len(resp.Alerts)),
	}

	for _, b := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			ID:            b.Slot.ID,
			Zone:          b.Slot.Zone,
			Status:        string(b.Status),
			IsReserved:    b.Slot.IsReserved,
			VehicleType:   b.Slot.VehicleType,
			LicensePlate:  b.Slot.LicensePlate,
			CustomerID:    b.Slot.CustomerID,
			EntryTime:     b.Slot.EntryTime,
			Duration:      b.DurationText,
			DurationHours: b.DurationHours,
			Rate:          b.Rate,
			BillableHours: b.BillableHours,
			Fee:           b.Fee,
			Fine:          b.Fine,
			Total:         b.Total,
			ClockAnomaly:  b.ClockAnomaly,
		})
	}

	for _, z := range resp.Zones {
		out.Zones = append(out.Zones, ZoneResponse{
			Zone:       z.Zone,
			Available:  z.Available,
			Total:      z.Total,
			Percentage: z.Percentage,
		})
	}

	for _, a := range resp.Alerts {
		out.Alerts = append(out.Alerts, AlertResponse{
			Kind:    string(a.Kind),
			Message: a.Message,
			Time:    a.Time.Format(domain.TimeFormat),
		})
	}

	return out
}

// FromDomainStatistics конвертирует статистику в DTO
func FromDomainStatistics(s domain.Statistics) StatisticsResponse {
	return StatisticsResponse{
		Occupied:         s.Occupied,
		Available:        s.Available,
		Reserved:         s.Reserved,
		Maintenance:      s.Maintenance,
		OccupancyRate:    s.OccupancyRate,
		TotalFee:         s.TotalFee,
		TotalFine:        s.TotalFine,
		TotalEarnings:    s.TotalEarnings,
		AvgDurationHours: s.AvgDurationHours,
		OverstayCount:    s.OverstayCount,
		TurnoverRate:     s.TurnoverRate,
		AvgWaitMinutes:   s.AvgWaitMinutes,
	}
}

// NewDegradedResponse формирует явно помеченный ответ без данных
func NewDegradedResponse(resp *getDashboard.Response, message string) *DegradedResponse {
	return &DegradedResponse{
		DataAvailable: false,
		Reason:        handlers.ReasonDataUnavailable,
		Error:         message,
		GeneratedAt:   resp.GeneratedAt,
		Rate:          resp.Rate,
		IsPeak:        resp.IsPeak,
	}
}
