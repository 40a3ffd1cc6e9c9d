package get_history

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type Handler struct {
	history HistoryReader
	logger  Logger
}

func NewHandler(history HistoryReader, logger Logger) *Handler {
	return &Handler{
		history: history,
		logger:  logger,
	}
}

// Handle GET /api/v1/history
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromDomainHistory(h.history.Points(), h.history.Cap()))
}
