package alerts

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	offPeak = time.Date(2025, 3, 14, 13, 0, 0, 0, time.UTC)
	peak    = time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
)

func kinds(alerts []domain.Alert) []domain.AlertKind {
	out := make([]domain.AlertKind, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, a.Kind)
	}
	return out
}

func TestEvaluate_Occupancy(t *testing.T) {
	cfg := domain.DefaultPricingConfig()
	thresholds := domain.DefaultAlertThresholds()

	tests := []struct {
		name     string
		rate     float64
		expected []domain.AlertKind
		message  string
	}{
		{name: "critical excludes warning", rate: 86, expected: []domain.AlertKind{domain.AlertCritical}, message: "Critical: 86.0% occupancy - Near full!"},
		{name: "warning", rate: 72.5, expected: []domain.AlertKind{domain.AlertWarning}, message: "Warning: 72.5% occupancy - High demand"},
		{name: "exactly 85 is only a warning", rate: 85, expected: []domain.AlertKind{domain.AlertWarning}, message: "Warning: 85.0% occupancy - High demand"},
		{name: "exactly 70 is quiet", rate: 70, expected: []domain.AlertKind{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := Evaluate(domain.Statistics{OccupancyRate: tt.rate}, offPeak, cfg, thresholds)

			assert.Equal(t, tt.expected, kinds(alerts))
			if tt.message != "" {
				assert.Equal(t, tt.message, alerts[0].Message)
				assert.Equal(t, offPeak, alerts[0].Time)
			}
		})
	}
}

func TestEvaluate_FixedOrder(t *testing.T) {
	stats := domain.Statistics{
		OccupancyRate: 90,
		OverstayCount: 3,
		TotalFine:     1200,
		TotalEarnings: 12500,
	}

	alerts := Evaluate(stats, peak, domain.DefaultPricingConfig(), domain.DefaultAlertThresholds())

	require.Equal(t, []domain.AlertKind{
		domain.AlertCritical,
		domain.AlertWarning,
		domain.AlertSuccess,
		domain.AlertInfo,
	}, kinds(alerts))

	assert.Equal(t, "3 vehicle(s) overstaying - Rs 1,200 in fines", alerts[1].Message)
	assert.Equal(t, "Revenue milestone: Rs 12,500 earned", alerts[2].Message)
	assert.Equal(t, "Peak hour pricing active - Rate: Rs 75.0/hour", alerts[3].Message)
}

func TestEvaluate_Idempotent(t *testing.T) {
	stats := domain.Statistics{OccupancyRate: 75, OverstayCount: 1, TotalFine: 100}
	cfg := domain.DefaultPricingConfig()
	thresholds := domain.DefaultAlertThresholds()

	assert.Equal(t, Evaluate(stats, peak, cfg, thresholds), Evaluate(stats, peak, cfg, thresholds))
}

func TestEvaluate_Quiet(t *testing.T) {
	alerts := Evaluate(domain.Statistics{}, offPeak, domain.DefaultPricingConfig(), domain.DefaultAlertThresholds())
	assert.Empty(t, alerts)
}

func TestEvaluate_CustomCurrency(t *testing.T) {
	cfg := domain.DefaultPricingConfig()
	cfg.Currency = "EUR"

	alerts := Evaluate(domain.Statistics{TotalEarnings: 10001}, offPeak, cfg, domain.DefaultAlertThresholds())

	require.Len(t, alerts, 1)
	assert.Equal(t, "Revenue milestone: EUR 10,001 earned", alerts[0].Message)
}

func TestCountByKind(t *testing.T) {
	alerts := []domain.Alert{{Kind: domain.AlertWarning}, {Kind: domain.AlertWarning}, {Kind: domain.AlertInfo}}

	counts := CountByKind(alerts)

	assert.Equal(t, 2, counts["warning"])
	assert.Equal(t, 1, counts["info"])
	assert.Zero(t, counts["critical"])
}

func TestBoard_ReplaceDiscardsPrevious(t *testing.T) {
	board := NewBoard()
	assert.Empty(t, board.Current())

	board.Replace([]domain.Alert{{Kind: domain.AlertCritical}, {Kind: domain.AlertInfo}})
	board.Replace([]domain.Alert{{Kind: domain.AlertWarning}})

	assert.Equal(t, []domain.AlertKind{domain.AlertWarning}, kinds(board.Current()))
}

func TestBoard_ConcurrentAccess(t *testing.T) {
	board := NewBoard()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			board.Replace([]domain.Alert{{Kind: domain.AlertInfo}})
		}()
		go func() {
			defer wg.Done()
			_ = board.Current()
		}()
	}
	wg.Wait()

	assert.Len(t, board.Current(), 1)
}
