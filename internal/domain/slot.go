package domain

import "time"

// RawStatus is the occupancy status stored for a slot
type RawStatus string

const (
	RawStatusAvailable RawStatus = "available"
	RawStatusOccupied  RawStatus = "occupied"
)

// EffectiveStatus is the display status after the maintenance override
type EffectiveStatus string

const (
	EffectiveAvailable   EffectiveStatus = "AVAILABLE"
	EffectiveOccupied    EffectiveStatus = "OCCUPIED"
	EffectiveMaintenance EffectiveStatus = "MAINTENANCE"
)

// Slot represents a parking slot as read from the store.
// The core never mutates a slot in place, only proposes changes to the store.
type Slot struct {
	ID          string
	Zone        string
	RawStatus   RawStatus
	Maintenance bool
	IsReserved  bool
	EntryTime   *time.Time // set only while occupied

	// Populated only while occupied
	VehicleType  *string
	LicensePlate *string
	CustomerID   *string

	UpdatedAt time.Time
}

// EffectiveStatus returns Maintenance if the maintenance flag is set,
// otherwise Occupied or Available according to the raw status
func (s *Slot) EffectiveStatus() EffectiveStatus {
	if s.Maintenance {
		return EffectiveMaintenance
	}
	if s.RawStatus == RawStatusOccupied {
		return EffectiveOccupied
	}
	return EffectiveAvailable
}

// IsOccupied returns true if the effective status is Occupied
func (s *Slot) IsOccupied() bool {
	return s.EffectiveStatus() == EffectiveOccupied
}

// IsAllocatable returns true if the slot can be reserved for a new booking
func (s *Slot) IsAllocatable() bool {
	return s.EffectiveStatus() == EffectiveAvailable && !s.IsReserved && !s.Maintenance
}

// BilledSlot is a slot enriched with its current duration and charges
type BilledSlot struct {
	Slot          Slot
	Status        EffectiveStatus
	DurationHours float64
	DurationText  string  // "2h 10m" or "-"
	Rate          float64 // rate used for the fee, 0 when not occupied
	BillableHours int64
	Fee           float64
	Fine          float64
	Total         float64
	ClockAnomaly  bool // entry time was in the future
}

// IsOverstaying returns true if the slot carries an overstay fine
func (b *BilledSlot) IsOverstaying() bool {
	return b.Fine > 0
}
