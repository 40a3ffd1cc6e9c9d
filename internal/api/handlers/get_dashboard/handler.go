package get_dashboard

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

const (
	msgDataUnavailable = "данные о слотах временно недоступны"
)

type Handler struct {
	useCase GetDashboardUseCase
	logger  Logger
}

func NewHandler(useCase GetDashboardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard - Failed to build dashboard: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	if !result.DataAvailable {
		h.logger.Warn("GET /dashboard - Slot data unavailable: %s", result.Reason)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, NewDegradedResponse(result, msgDataUnavailable))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
