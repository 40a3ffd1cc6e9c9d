package domain

// Default pricing values
const (
	DefaultBaseRate       = 50.0
	DefaultFreeHours      = 2.0
	DefaultPenaltyRate    = 100.0
	DefaultPeakMultiplier = 1.5
	DefaultCurrency       = "Rs"
)

// Default inventory values
const (
	DefaultTotalCapacity = 100
	DefaultHistorySize   = 50
)

// Default alert thresholds
const (
	DefaultCriticalOccupancy = 85.0
	DefaultWarningOccupancy  = 70.0
	DefaultRevenueMilestone  = 10000.0
)

// Booking validation constants
const (
	MinBookingDurationHours      = 1
	MaxBookingDurationHours      = 24
	DefaultMaxAllocationAttempts = 3
	DefaultActivityLogLimit      = 50
	SystemActor                  = "System"
)

// Activity log actions
const (
	ActionBookingCreated   = "Booking Created"
	ActionBookingCompleted = "Booking Completed"
)

// Time format constants
const (
	TimeFormat     = "15:04:05"
	DateTimeFormat = "2006-01-02 15:04:05"
)

// DefaultZones is the zone layout of the original deployment
var DefaultZones = []string{"Zone-A", "Zone-B", "Zone-C", "Zone-D"}
