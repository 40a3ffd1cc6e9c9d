// Package billing turns a slot snapshot into per-slot fees and overstay fines.
//
// Fees are charged at the rate in effect at calculation time, not integrated over
// the stay. Two successive queries for the same parked vehicle can therefore
// return different fees when a peak window opens or closes between them.
package billing

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/pricing"
)

// NoDuration is the display duration for slots that are not occupied
const NoDuration = "-"

// Result is the outcome of billing a single slot
type Result struct {
	Duration      time.Duration
	DurationHours float64
	BillableHours int64
	Fee           float64
	Fine          float64
	Total         float64
	ClockAnomaly  bool
}

// Bill computes fee and fine for one slot at now.
// Slots that are not effectively occupied, or have no entry time, yield a zero Result.
// An entry time in the future yields zero duration with ClockAnomaly set.
func Bill(slot domain.Slot, now time.Time, rate, freeHours, penaltyRate float64) Result {
	if !slot.IsOccupied() || slot.EntryTime == nil {
		return Result{}
	}

	var res Result
	duration := now.Sub(*slot.EntryTime)
	if duration < 0 {
		duration = 0
		res.ClockAnomaly = true
	}

	res.Duration = duration
	res.DurationHours = duration.Hours()
	res.BillableHours = BillableHours(duration)
	res.Fee = float64(res.BillableHours) * rate

	if duration > hoursToDuration(freeHours) {
		res.Fine = (float64(res.BillableHours) - freeHours) * penaltyRate
	}

	res.Total = res.Fee + res.Fine
	return res
}

// BillableHours rounds d up to the next whole hour, exact multiples stay as they are
func BillableHours(d time.Duration) int64 {
	hours := int64(d / time.Hour)
	if d%time.Hour > 0 {
		hours++
	}
	return hours
}

// FormatDuration renders d as "2h 10m"
func FormatDuration(d time.Duration) string {
	hours := int64(d / time.Hour)
	minutes := int64((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// BillSnapshot bills every slot of the snapshot at the rate in effect at now.
// Output order matches input order.
func BillSnapshot(slots []domain.Slot, now time.Time, cfg domain.PricingConfig) []domain.BilledSlot {
	rate := pricing.DynamicRate(now, cfg)

	billed := make([]domain.BilledSlot, 0, len(slots))
	for _, slot := range slots {
		b := domain.BilledSlot{
			Slot:         slot,
			Status:       slot.EffectiveStatus(),
			DurationText: NoDuration,
		}

		if slot.IsOccupied() && slot.EntryTime != nil {
			res := Bill(slot, now, rate, cfg.FreeHours, cfg.PenaltyRate)
			b.DurationHours = res.DurationHours
			b.DurationText = FormatDuration(res.Duration)
			b.Rate = rate
			b.BillableHours = res.BillableHours
			b.Fee = res.Fee
			b.Fine = res.Fine
			b.Total = res.Total
			b.ClockAnomaly = res.ClockAnomaly
		}

		billed = append(billed, b)
	}

	return billed
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
