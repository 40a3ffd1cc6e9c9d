package checkout_booking

import (
	"time"

	checkoutBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/checkout_booking"
)

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Vehicle       string  `json:"vehicle"`
	License       string  `json:"license"`
	SlotID        string  `json:"slotId"`
	Zone          string  `json:"zone"`
	DurationHours int     `json:"durationHours"`
	Cost          float64 `json:"cost"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
	CheckoutTime  string  `json:"checkoutTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkoutBooking.Response) *CheckoutResponse {
	return &CheckoutResponse{
		ID:            resp.ID,
		Name:          resp.Name,
		Phone:         resp.Phone,
		Vehicle:       resp.Vehicle,
		License:       resp.License,
		SlotID:        resp.SlotID,
		Zone:          resp.Zone,
		DurationHours: resp.DurationHours,
		Cost:          resp.Cost,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		CheckoutTime:  resp.CheckoutTime.Format(time.RFC3339),
	}
}
