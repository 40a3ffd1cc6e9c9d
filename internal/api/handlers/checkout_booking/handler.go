package checkout_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	checkoutBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/checkout_booking"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgAlreadyCompleted = "бронирование уже завершено"
)

type Handler struct {
	useCase CheckoutBookingUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.useCase.Execute(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, checkoutBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/checkout - Invalid booking ID: %q", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, checkoutBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/checkout - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, checkoutBooking.ErrAlreadyCompleted):
			h.logger.Warn("PATCH /bookings/{id}/checkout - Already completed: booking_id=%s", bookingID)
			handlers.RespondRejection(w, http.StatusConflict, handlers.ReasonAlreadyCompleted, msgAlreadyCompleted, nil)

		default:
			h.logger.Error("PATCH /bookings/{id}/checkout - Failed to checkout booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/checkout - Booking completed: booking_id=%s, slot_id=%s",
		result.ID, result.SlotID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
