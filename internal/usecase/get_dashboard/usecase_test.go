package get_dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/alerts"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/history"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type MockSlotRepository struct {
	mock.Mock
}

func (m *MockSlotRepository) GetAll(ctx context.Context) ([]domain.Slot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Slot), args.Error(1)
}

type fixedRandom float64

func (f fixedRandom) Float64() float64 {
	return float64(f)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

// полдень, вне часов пик
var noon = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

type fixture struct {
	slots   *MockSlotRepository
	board   *alerts.Board
	ring    *history.Ring
	metrics *metrics.Metrics
	uc      *UseCase
}

func newFixture(capacity int) *fixture {
	f := &fixture{
		slots:   &MockSlotRepository{},
		board:   alerts.NewBoard(),
		ring:    history.NewRing(domain.DefaultHistorySize),
		metrics: metrics.NewWithRegistry(prometheus.NewRegistry(), "parking-test"),
	}
	cfg := Config{
		Pricing:       domain.DefaultPricingConfig(),
		Thresholds:    domain.DefaultAlertThresholds(),
		TotalCapacity: capacity,
	}
	f.uc = NewUseCase(f.slots, fixedRandom(0.5), f.board, f.ring, f.metrics, fixedTime{now: noon}, cfg, logger.NewNop())
	return f
}

// layout возвращает occupied занятых и free свободных слотов
func layout(occupied, free int, entry time.Time) []domain.Slot {
	slots := make([]domain.Slot, 0, occupied+free)
	for i := 0; i < occupied+free; i++ {
		s := domain.Slot{
			ID:        fmt.Sprintf("P%03d", i+1),
			Zone:      domain.DefaultZones[i%len(domain.DefaultZones)],
			RawStatus: domain.RawStatusAvailable,
		}
		if i < occupied {
			s.RawStatus = domain.RawStatusOccupied
			s.EntryTime = ptr.Ptr(entry)
		}
		slots = append(slots, s)
	}
	return slots
}

func TestExecute_ComputesDashboard(t *testing.T) {
	f := newFixture(10)
	f.slots.On("GetAll", mock.Anything).Return(layout(9, 1, noon.Add(-time.Hour)), nil)

	resp, err := f.uc.Execute(context.Background())
	require.NoError(t, err)

	require.True(t, resp.DataAvailable)
	assert.Equal(t, 50.0, resp.Rate)
	assert.False(t, resp.IsPeak)
	assert.Len(t, resp.Slots, 10)
	assert.Equal(t, 9, resp.Statistics.Occupied)
	assert.Equal(t, 1, resp.Statistics.Available)
	assert.InDelta(t, 90.0, resp.Statistics.OccupancyRate, 1e-9)
	assert.InDelta(t, 450.0, resp.Statistics.TotalEarnings, 1e-9)
	assert.Len(t, resp.Zones, len(domain.DefaultZones))

	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, domain.AlertCritical, resp.Alerts[0].Kind)
	assert.Equal(t, resp.Alerts, f.board.Current())

	points := f.ring.Points()
	require.Len(t, points, 1)
	assert.Equal(t, noon, points[0].Time)
	assert.InDelta(t, 90.0, points[0].OccupancyRate, 1e-9)

	assert.Equal(t, 90.0, testutil.ToFloat64(f.metrics.OccupancyRate.WithLabelValues("parking-test")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.ActiveAlerts.WithLabelValues("parking-test", "critical")))
	assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.ActiveAlerts.WithLabelValues("parking-test", "warning")))
}

func TestExecute_DataUnavailable(t *testing.T) {
	f := newFixture(10)
	previous := []domain.Alert{{Kind: domain.AlertInfo, Message: "previous", Time: noon}}
	f.board.Replace(previous)
	f.slots.On("GetAll", mock.Anything).Return(nil, errors.New("connection refused"))

	resp, err := f.uc.Execute(context.Background())
	require.NoError(t, err)

	assert.False(t, resp.DataAvailable)
	assert.Equal(t, ErrDataUnavailable.Error(), resp.Reason)
	assert.Equal(t, 50.0, resp.Rate)
	assert.Nil(t, resp.Slots)
	assert.Equal(t, previous, f.board.Current())
	assert.Equal(t, 0, f.ring.Len())
}

func TestExecute_ClockAnomaly(t *testing.T) {
	f := newFixture(10)
	f.slots.On("GetAll", mock.Anything).Return(layout(1, 9, noon.Add(30*time.Minute)), nil)

	resp, err := f.uc.Execute(context.Background())
	require.NoError(t, err)

	require.True(t, resp.DataAvailable)
	assert.True(t, resp.Slots[0].ClockAnomaly)
	assert.Equal(t, 0.0, resp.Slots[0].DurationHours)
	assert.Equal(t, 0.0, resp.Slots[0].Total)
}

func TestExecute_EachCallAppendsHistory(t *testing.T) {
	f := newFixture(10)
	f.slots.On("GetAll", mock.Anything).Return(layout(2, 8, noon.Add(-time.Hour)), nil)

	for i := 0; i < 3; i++ {
		_, err := f.uc.Execute(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, 3, f.ring.Len())
	assert.Empty(t, f.board.Current())
}

func TestSummary_HasNoSideEffects(t *testing.T) {
	f := newFixture(10)
	f.slots.On("GetAll", mock.Anything).Return(layout(9, 1, noon.Add(-time.Hour)), nil)

	resp, err := f.uc.Summary(context.Background())
	require.NoError(t, err)

	assert.True(t, resp.DataAvailable)
	assert.Equal(t, 9, resp.Statistics.Occupied)
	assert.Nil(t, resp.Alerts)
	assert.Empty(t, f.board.Current())
	assert.Equal(t, 0, f.ring.Len())
}
