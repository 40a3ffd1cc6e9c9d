package get_pricing

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
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

// Handle GET /api/v1/pricing
// Публичный endpoint
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.Current(r.Context())

	h.logger.Info("GET /pricing - rate=%.2f, peak=%t", result.CurrentRate, result.IsPeak)
	handlers.RespondJSON(w, http.StatusOK, result)
}
