package get_dashboard

import "errors"

var (
	// ErrDataUnavailable возвращается в Reason, когда снимок слотов не удалось прочитать
	ErrDataUnavailable = errors.New("slot data unavailable")
)
