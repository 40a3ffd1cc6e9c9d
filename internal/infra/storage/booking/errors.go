package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBookingNotActive возвращается, когда условное завершение не нашло активного бронирования
	ErrBookingNotActive = errors.New("booking.repository: booking is not active")

	// ErrBookingIDConflict возвращается при нарушении уникальности id бронирования
	ErrBookingIDConflict = errors.New("booking.repository: booking id already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
