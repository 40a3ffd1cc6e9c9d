package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotNotAvailable возвращается, когда условное резервирование не затронуло ни одной строки
	ErrSlotNotAvailable = errors.New("slot.repository: slot not available")

	// ErrInvalidSeed возвращается при недопустимых параметрах заполнения парковки
	ErrInvalidSeed = errors.New("slot.repository: invalid seed parameters")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
