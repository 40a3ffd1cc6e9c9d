package estimate_cost

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/pricing"
)

const (
	msgInvalidDuration = "некорректный параметр durationHours"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/pricing/estimate?durationHours=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	durationStr := r.URL.Query().Get("durationHours")

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /pricing/estimate - Invalid durationHours=%q: %v", durationStr, err)
		handlers.RespondRejection(w, http.StatusBadRequest, handlers.ReasonValidationError, msgInvalidDuration, []string{"durationHours"})
		return
	}

	result, err := h.service.Estimate(r.Context(), duration)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidInput):
			handlers.RespondRejection(w, http.StatusBadRequest, handlers.ReasonValidationError, err.Error(), []string{"durationHours"})

		default:
			h.logger.Error("GET /pricing/estimate - Failed to estimate: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
