package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

const (
	freeHours   = 2.0
	penaltyRate = 100.0
)

var now = time.Date(2025, 3, 14, 13, 0, 0, 0, time.UTC)

func occupiedFor(d time.Duration) domain.Slot {
	return domain.Slot{
		ID:        "P001",
		Zone:      "Zone-A",
		RawStatus: domain.RawStatusOccupied,
		EntryTime: ptr.Ptr(now.Add(-d)),
	}
}

func TestBill_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		rate     float64
		billable int64
		fee      float64
		fine     float64
		total    float64
	}{
		{
			name:     "2h10m at base rate overstays",
			duration: 2*time.Hour + 10*time.Minute,
			rate:     50,
			billable: 3,
			fee:      150,
			fine:     100,
			total:    250,
		},
		{
			name:     "exactly 2h is not rounded up and not fined",
			duration: 2 * time.Hour,
			rate:     50,
			billable: 2,
			fee:      100,
			fine:     0,
			total:    100,
		},
		{
			name:     "1h30m at peak rate",
			duration: 90 * time.Minute,
			rate:     75,
			billable: 2,
			fee:      150,
			fine:     0,
			total:    150,
		},
		{
			name:     "one second over the free threshold",
			duration: 2*time.Hour + time.Second,
			rate:     50,
			billable: 3,
			fee:      150,
			fine:     100,
			total:    250,
		},
		{
			name:     "exactly 4h is fined for two hours",
			duration: 4 * time.Hour,
			rate:     50,
			billable: 4,
			fee:      200,
			fine:     200,
			total:    400,
		},
		{
			name:     "just parked",
			duration: 0,
			rate:     50,
			billable: 0,
			fee:      0,
			fine:     0,
			total:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Bill(occupiedFor(tt.duration), now, tt.rate, freeHours, penaltyRate)

			assert.Equal(t, tt.billable, res.BillableHours)
			assert.Equal(t, tt.fee, res.Fee)
			assert.Equal(t, tt.fine, res.Fine)
			assert.Equal(t, tt.total, res.Total)
			assert.False(t, res.ClockAnomaly)
		})
	}
}

func TestBill_FineIsZeroWithinFreeHours(t *testing.T) {
	for minutes := 0; minutes <= 120; minutes++ {
		res := Bill(occupiedFor(time.Duration(minutes)*time.Minute), now, 50, freeHours, penaltyRate)
		require.Zero(t, res.Fine, "duration %d minutes", minutes)
	}
}

func TestBill_FineAboveFreeHours(t *testing.T) {
	for minutes := 121; minutes <= 24*60; minutes++ {
		d := time.Duration(minutes) * time.Minute
		res := Bill(occupiedFor(d), now, 50, freeHours, penaltyRate)

		ceil := int64(minutes / 60)
		if minutes%60 != 0 {
			ceil++
		}
		require.Equal(t, float64(ceil-2)*penaltyRate, res.Fine, "duration %d minutes", minutes)
	}
}

func TestBill_NotOccupied(t *testing.T) {
	tests := []struct {
		name string
		slot domain.Slot
	}{
		{
			name: "available",
			slot: domain.Slot{ID: "P002", RawStatus: domain.RawStatusAvailable},
		},
		{
			name: "maintenance overrides occupied",
			slot: domain.Slot{
				ID:          "P003",
				RawStatus:   domain.RawStatusOccupied,
				Maintenance: true,
				EntryTime:   ptr.Ptr(now.Add(-5 * time.Hour)),
			},
		},
		{
			name: "occupied without entry time",
			slot: domain.Slot{ID: "P004", RawStatus: domain.RawStatusOccupied},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Result{}, Bill(tt.slot, now, 50, freeHours, penaltyRate))
		})
	}
}

func TestBill_FutureEntryTimeIsClockAnomaly(t *testing.T) {
	slot := occupiedFor(-30 * time.Minute)

	res := Bill(slot, now, 50, freeHours, penaltyRate)

	assert.True(t, res.ClockAnomaly)
	assert.Zero(t, res.Duration)
	assert.Zero(t, res.Fee)
	assert.Zero(t, res.Fine)
}

// Fee follows the rate at query time, so the same stay is billed differently
// before and after a peak window opens.
func TestBillSnapshot_CurrentRateIsNonMonotonic(t *testing.T) {
	cfg := domain.DefaultPricingConfig()
	entry := time.Date(2025, 3, 14, 5, 30, 0, 0, time.UTC)
	slot := domain.Slot{ID: "P010", RawStatus: domain.RawStatusOccupied, EntryTime: &entry}

	beforePeak := BillSnapshot([]domain.Slot{slot}, time.Date(2025, 3, 14, 6, 59, 0, 0, time.UTC), cfg)
	atPeak := BillSnapshot([]domain.Slot{slot}, time.Date(2025, 3, 14, 7, 0, 0, 0, time.UTC), cfg)

	require.Len(t, beforePeak, 1)
	require.Len(t, atPeak, 1)
	assert.Equal(t, int64(2), beforePeak[0].BillableHours)
	assert.Equal(t, int64(2), atPeak[0].BillableHours)
	assert.Equal(t, 100.0, beforePeak[0].Fee)
	assert.Equal(t, 150.0, atPeak[0].Fee)
}

func TestBillSnapshot(t *testing.T) {
	cfg := domain.DefaultPricingConfig()
	snapshot := []domain.Slot{
		occupiedFor(2*time.Hour + 10*time.Minute),
		{ID: "P002", Zone: "Zone-A", RawStatus: domain.RawStatusAvailable},
		{ID: "P003", Zone: "Zone-A", RawStatus: domain.RawStatusAvailable, Maintenance: true},
	}

	billed := BillSnapshot(snapshot, now, cfg)

	require.Len(t, billed, 3)

	assert.Equal(t, domain.EffectiveOccupied, billed[0].Status)
	assert.Equal(t, "2h 10m", billed[0].DurationText)
	assert.Equal(t, 50.0, billed[0].Rate)
	assert.Equal(t, 250.0, billed[0].Total)
	assert.True(t, billed[0].IsOverstaying())

	assert.Equal(t, domain.EffectiveAvailable, billed[1].Status)
	assert.Equal(t, NoDuration, billed[1].DurationText)
	assert.Zero(t, billed[1].Total)

	assert.Equal(t, domain.EffectiveMaintenance, billed[2].Status)
	assert.Equal(t, NoDuration, billed[2].DurationText)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h 0m", FormatDuration(0))
	assert.Equal(t, "2h 10m", FormatDuration(2*time.Hour+10*time.Minute+59*time.Second))
	assert.Equal(t, "26h 5m", FormatDuration(26*time.Hour+5*time.Minute))
}
