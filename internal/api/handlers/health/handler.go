package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

// Статусы проверки
const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	databaseUp     = "up"
	databaseDown   = "down"
)

// HealthResponse HTTP response model
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

type Handler struct {
	db           Pinger
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(db Pinger, timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Handle GET /api/v1/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:    statusOK,
		Database:  databaseUp,
		Timestamp: h.timeProvider.Now(),
	}

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("GET /health - Database ping failed: %v", err)
		resp.Status = statusDegraded
		resp.Database = databaseDown
		handlers.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
