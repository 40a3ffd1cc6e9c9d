package domain

import "time"

// Statistics is derived from a billed slot snapshot and never persisted
type Statistics struct {
	Occupied         int
	Available        int
	Reserved         int
	Maintenance      int
	OccupancyRate    float64 // occupied / capacity × 100
	TotalFee         float64
	TotalFine        float64
	TotalEarnings    float64
	AvgDurationHours float64
	OverstayCount    int

	// Simulated placeholders, not derived from the snapshot.
	// Callers must not rely on them being deterministic.
	TurnoverRate   float64
	AvgWaitMinutes float64
}

// ZoneAvailability is the per-zone availability breakdown
type ZoneAvailability struct {
	Zone       string
	Available  int
	Total      int
	Percentage float64
}

// AlertKind is the severity tag of an alert
type AlertKind string

const (
	AlertCritical AlertKind = "critical"
	AlertWarning  AlertKind = "warning"
	AlertSuccess  AlertKind = "success"
	AlertInfo     AlertKind = "info"
)

// Alert is a single evaluated alert
type Alert struct {
	Kind    AlertKind
	Message string
	Time    time.Time
}

// HistoryPoint is one sample of the occupancy/revenue trend
type HistoryPoint struct {
	Time          time.Time
	OccupancyRate float64
	TotalEarnings float64
}
