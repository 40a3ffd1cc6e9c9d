package get_slots_summary

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

const (
	msgDataUnavailable = "данные о слотах временно недоступны"
)

type Handler struct {
	useCase DashboardUseCase
	logger  Logger
}

func NewHandler(useCase DashboardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/summary
// Публичный endpoint
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Summary(r.Context())
	if err != nil {
		h.logger.Error("GET /slots/summary - Failed to build summary: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	if !result.DataAvailable {
		h.logger.Warn("GET /slots/summary - Slot data unavailable: %s", result.Reason)
		handlers.RespondRejection(w, http.StatusServiceUnavailable, handlers.ReasonDataUnavailable, msgDataUnavailable, nil)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
