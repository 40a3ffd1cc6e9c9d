package get_dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	getDashboard "github.com/m04kA/SMC-ParkingService/internal/usecase/get_dashboard"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context) (*getDashboard.Response, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getDashboard.Response), args.Error(1)
}

var generatedAt = time.Date(2025, 3, 14, 8, 15, 0, 0, time.UTC)

func TestHandle(t *testing.T) {
	uc := &MockUseCase{}
	h := NewHandler(uc, logger.NewNop())

	uc.On("Execute", mock.Anything).Return(&getDashboard.Response{
		DataAvailable: true,
		GeneratedAt:   generatedAt,
		Rate:          75,
		IsPeak:        true,
		Currency:      "Rs",
		TotalCapacity: 100,
		Slots: []domain.BilledSlot{
			{Slot: domain.Slot{ID: "P001", Zone: "Zone-A"}, Status: domain.EffectiveAvailable, DurationText: "-"},
		},
		Statistics: domain.Statistics{Available: 1},
		Zones:      []domain.ZoneAvailability{{Zone: "Zone-A", Available: 1, Total: 1, Percentage: 100}},
		Alerts:     []domain.Alert{{Kind: domain.AlertInfo, Message: "Peak hours active", Time: generatedAt}},
	}, nil)

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.DataAvailable)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "AVAILABLE", resp.Slots[0].Status)
	assert.Equal(t, "-", resp.Slots[0].Duration)
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, "08:15:00", resp.Alerts[0].Time)
}

func TestHandle_DataUnavailable(t *testing.T) {
	uc := &MockUseCase{}
	h := NewHandler(uc, logger.NewNop())

	uc.On("Execute", mock.Anything).Return(&getDashboard.Response{
		DataAvailable: false,
		Reason:        getDashboard.ErrDataUnavailable.Error(),
		GeneratedAt:   generatedAt,
		Rate:          75,
	}, nil)

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp DegradedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.DataAvailable)
	assert.Equal(t, handlers.ReasonDataUnavailable, resp.Reason)
	assert.NotContains(t, rec.Body.String(), `"statistics"`)
}
