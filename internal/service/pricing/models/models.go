package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// PeakWindowResponse окно часа пик [startHour, endHour)
type PeakWindowResponse struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

// PricingResponse действующий тариф и конфигурация
type PricingResponse struct {
	CurrentRate    float64              `json:"currentRate"`
	IsPeak         bool                 `json:"isPeak"`
	BaseRate       float64              `json:"baseRate"`
	FreeHours      float64              `json:"freeHours"`
	PenaltyRate    float64              `json:"penaltyRate"`
	PeakMultiplier float64              `json:"peakMultiplier"`
	PeakWindows    []PeakWindowResponse `json:"peakWindows"`
	Currency       string               `json:"currency"`
	Timestamp      time.Time            `json:"timestamp"`
}

// EstimateResponse оценка стоимости бронирования
type EstimateResponse struct {
	DurationHours int       `json:"durationHours"`
	Rate          float64   `json:"rate"`
	IsPeak        bool      `json:"isPeak"`
	Cost          float64   `json:"cost"`
	Currency      string    `json:"currency"`
	Timestamp     time.Time `json:"timestamp"`
}

// FromDomainPricing конвертирует конфигурацию тарификации в DTO
func FromDomainPricing(cfg domain.PricingConfig, now time.Time, rate float64, isPeak bool) *PricingResponse {
	windows := make([]PeakWindowResponse, len(cfg.PeakWindows))
	for i, w := range cfg.PeakWindows {
		windows[i] = PeakWindowResponse{StartHour: w.StartHour, EndHour: w.EndHour}
	}

	return &PricingResponse{
		CurrentRate:    rate,
		IsPeak:         isPeak,
		BaseRate:       cfg.BaseRate,
		FreeHours:      cfg.FreeHours,
		PenaltyRate:    cfg.PenaltyRate,
		PeakMultiplier: cfg.PeakMultiplier,
		PeakWindows:    windows,
		Currency:       cfg.Currency,
		Timestamp:      now,
	}
}
