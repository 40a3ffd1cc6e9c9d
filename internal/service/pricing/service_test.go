package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

func newService(now time.Time) *Service {
	return NewService(
		domain.DefaultPricingConfig(),
		domain.MinBookingDurationHours,
		domain.MaxBookingDurationHours,
		fixedTime{now: now},
		logger.NewNop(),
	)
}

func TestCurrent_Peak(t *testing.T) {
	svc := newService(time.Date(2025, 3, 14, 8, 30, 0, 0, time.UTC))

	resp := svc.Current(context.Background())

	assert.True(t, resp.IsPeak)
	assert.Equal(t, 75.0, resp.CurrentRate)
	assert.Equal(t, 50.0, resp.BaseRate)
	assert.Equal(t, "Rs", resp.Currency)
	assert.Equal(t, []int{7, 10}, []int{resp.PeakWindows[0].StartHour, resp.PeakWindows[0].EndHour})
}

func TestCurrent_OffPeak(t *testing.T) {
	svc := newService(time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC))

	resp := svc.Current(context.Background())

	assert.False(t, resp.IsPeak)
	assert.Equal(t, 50.0, resp.CurrentRate)
}

func TestEstimate(t *testing.T) {
	svc := newService(time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC))

	resp, err := svc.Estimate(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, 75.0, resp.Rate)
	assert.Equal(t, 225.0, resp.Cost)
	assert.True(t, resp.IsPeak)
}

func TestEstimate_OutOfRange(t *testing.T) {
	svc := newService(time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC))

	for _, hours := range []int{0, -1, 25} {
		_, err := svc.Estimate(context.Background(), hours)
		assert.ErrorIs(t, err, ErrInvalidInput, "hours=%d", hours)
	}
}
