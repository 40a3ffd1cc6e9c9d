package get_history

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/history"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

func TestHandle(t *testing.T) {
	ring := history.NewRing(2)
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		ring.Push(domain.HistoryPoint{Time: base.Add(time.Duration(i) * time.Minute), OccupancyRate: float64(10 * i)})
	}

	rec := httptest.NewRecorder()
	NewHandler(ring, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/history", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Capacity)
	require.Len(t, resp.Points, 2)
	assert.Equal(t, "09:01:00", resp.Points[0].Label)
	assert.Equal(t, 20.0, resp.Points[1].OccupancyRate)
}

func TestHandle_Empty(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(history.NewRing(5), logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/history", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"points":[]`)
}
