// Package statistics reduces a billed slot snapshot into occupancy and revenue figures.
package statistics

import (
	"math/rand/v2"
	"sort"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Ranges of the simulated placeholder metrics
const (
	minTurnoverRate = 3.0
	maxTurnoverRate = 8.0
	minWaitMinutes  = 5.0
	maxWaitMinutes  = 30.0

	// ожидание моделируется только при нехватке свободных мест
	waitAvailableThreshold = 20
)

// RandomSource produces values in [0, 1)
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns the default RandomSource
func NewRandomSource() RandomSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Aggregate computes statistics over billed slots.
// TurnoverRate and AvgWaitMinutes are drawn from rnd and are not derived from the snapshot.
// An empty snapshot yields zero statistics without drawing from rnd.
func Aggregate(billed []domain.BilledSlot, totalCapacity int, rnd RandomSource) domain.Statistics {
	var stats domain.Statistics
	if len(billed) == 0 {
		return stats
	}

	var occupiedHours float64
	for i := range billed {
		b := &billed[i]

		switch b.Status {
		case domain.EffectiveOccupied:
			stats.Occupied++
			occupiedHours += b.DurationHours
		case domain.EffectiveAvailable:
			stats.Available++
		}
		if b.Slot.IsReserved {
			stats.Reserved++
		}
		if b.Slot.Maintenance {
			stats.Maintenance++
		}

		stats.TotalFee += b.Fee
		stats.TotalFine += b.Fine
		if b.IsOverstaying() {
			stats.OverstayCount++
		}
	}

	stats.TotalEarnings = stats.TotalFee + stats.TotalFine
	stats.OccupancyRate = OccupancyRate(stats.Occupied, totalCapacity)
	if stats.Occupied > 0 {
		stats.AvgDurationHours = occupiedHours / float64(stats.Occupied)
	}

	stats.TurnoverRate = minTurnoverRate + rnd.Float64()*(maxTurnoverRate-minTurnoverRate)
	if stats.Available <= waitAvailableThreshold {
		stats.AvgWaitMinutes = minWaitMinutes + rnd.Float64()*(maxWaitMinutes-minWaitMinutes)
	}

	return stats
}

// OccupancyRate returns occupied / capacity × 100, or 0 when capacity is not positive
func OccupancyRate(occupied, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(occupied) / float64(capacity) * 100
}

// ZoneBreakdown counts available slots per zone, sorted by zone name
func ZoneBreakdown(billed []domain.BilledSlot) []domain.ZoneAvailability {
	byZone := make(map[string]*domain.ZoneAvailability)
	for i := range billed {
		b := &billed[i]
		z, ok := byZone[b.Slot.Zone]
		if !ok {
			z = &domain.ZoneAvailability{Zone: b.Slot.Zone}
			byZone[b.Slot.Zone] = z
		}
		z.Total++
		if b.Status == domain.EffectiveAvailable {
			z.Available++
		}
	}

	zones := make([]domain.ZoneAvailability, 0, len(byZone))
	for _, z := range byZone {
		z.Percentage = float64(z.Available) / float64(z.Total) * 100
		zones = append(zones, *z)
	}
	sort.Slice(zones, func(i, j int) bool { return zones[i].Zone < zones[j].Zone })

	return zones
}
