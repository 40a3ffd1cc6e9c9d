package domain

// PeakWindow is a half-open hour-of-day interval [StartHour, EndHour)
type PeakWindow struct {
	StartHour int
	EndHour   int
}

// Contains returns true if hour h falls into the window
func (w PeakWindow) Contains(h int) bool {
	return w.StartHour <= h && h < w.EndHour
}

// PricingConfig holds everything the rate engine and the billing calculator need
type PricingConfig struct {
	BaseRate       float64
	FreeHours      float64
	PenaltyRate    float64
	PeakMultiplier float64
	PeakWindows    []PeakWindow
	Currency       string
}

// AlertThresholds configures the alert rules
type AlertThresholds struct {
	CriticalOccupancy float64
	WarningOccupancy  float64
	RevenueMilestone  float64
}

// DefaultPricingConfig returns the pricing of the original deployment
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		BaseRate:       DefaultBaseRate,
		FreeHours:      DefaultFreeHours,
		PenaltyRate:    DefaultPenaltyRate,
		PeakMultiplier: DefaultPeakMultiplier,
		PeakWindows: []PeakWindow{
			{StartHour: 7, EndHour: 10},
			{StartHour: 17, EndHour: 20},
		},
		Currency: DefaultCurrency,
	}
}

// DefaultAlertThresholds returns the alert thresholds of the original deployment
func DefaultAlertThresholds() AlertThresholds {
	return AlertThresholds{
		CriticalOccupancy: DefaultCriticalOccupancy,
		WarningOccupancy:  DefaultWarningOccupancy,
		RevenueMilestone:  DefaultRevenueMilestone,
	}
}
