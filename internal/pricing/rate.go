// Package pricing computes the hourly rate in effect at a given instant.
package pricing

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// IsPeak reports whether the hour of now falls into any configured peak window.
// The hour is taken in the location of now.
func IsPeak(now time.Time, cfg domain.PricingConfig) bool {
	hour := now.Hour()
	for _, w := range cfg.PeakWindows {
		if w.Contains(hour) {
			return true
		}
	}
	return false
}

// DynamicRate returns the hourly rate in effect at now
func DynamicRate(now time.Time, cfg domain.PricingConfig) float64 {
	if IsPeak(now, cfg) {
		return cfg.BaseRate * cfg.PeakMultiplier
	}
	return cfg.BaseRate
}

// EstimateCost returns the cost of a booking of durationHours at the rate in effect at now
func EstimateCost(now time.Time, durationHours int, cfg domain.PricingConfig) float64 {
	return float64(durationHours) * DynamicRate(now, cfg)
}
