package create_booking

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrNoCapacity возвращается, когда нет ни одного свободного слота
	ErrNoCapacity = errors.New("create_booking: no eligible slot available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError ошибка валидации с перечнем полей
// errors.Is(err, ErrInvalidInput) для неё возвращает true
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	return ErrInvalidInput.Error() + ": " + e.Reason + ": " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
