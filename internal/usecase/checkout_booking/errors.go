package checkout_booking

import "errors"

var (
	// ErrInvalidInput возвращается при пустом id бронирования
	ErrInvalidInput = errors.New("checkout_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("checkout_booking: booking not found")

	// ErrAlreadyCompleted возвращается при повторном выезде
	ErrAlreadyCompleted = errors.New("checkout_booking: booking already completed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("checkout_booking: internal error")
)
