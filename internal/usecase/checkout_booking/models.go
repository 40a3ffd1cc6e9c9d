package checkout_booking

import "time"

// Response завершенное бронирование
type Response struct {
	ID            string
	Name          string
	Phone         string
	Vehicle       string
	License       string
	SlotID        string
	Zone          string
	DurationHours int
	Cost          float64
	Status        string
	CreatedAt     time.Time
	CheckoutTime  time.Time
}
