package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модель запроса на бронирование места
type Request struct {
	Name          string  // Имя клиента
	Phone         string  // Телефон
	Vehicle       string  // Тип транспорта
	License       string  // Госномер
	DurationHours int     // Запрошенная длительность в часах
	Zone          *string // Предпочитаемая зона (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string
	Name          string
	Phone         string
	Vehicle       string
	License       string
	SlotID        string
	Zone          string
	DurationHours int
	Rate          float64 // Тариф на момент бронирования
	Cost          float64 // DurationHours × Rate
	Status        string
	CreatedAt     time.Time
}

// Config ограничения и тарифы, которые использует usecase
type Config struct {
	Pricing          domain.PricingConfig
	MinDurationHours int
	MaxDurationHours int
	MaxAttempts      int
}
