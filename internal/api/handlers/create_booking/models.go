package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Vehicle       string  `json:"vehicle"`
	License       string  `json:"license"`
	DurationHours int     `json:"durationHours"`
	Zone          *string `json:"zone,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Vehicle       string  `json:"vehicle"`
	License       string  `json:"license"`
	SlotID        string  `json:"slotId"`
	Zone          string  `json:"zone"`
	DurationHours int     `json:"durationHours"`
	Rate          float64 `json:"rate"`
	Cost          float64 `json:"cost"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Name:          r.Name,
		Phone:         r.Phone,
		Vehicle:       r.Vehicle,
		License:       r.License,
		DurationHours: r.DurationHours,
		Zone:          r.Zone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		Name:          resp.Name,
		Phone:         resp.Phone,
		Vehicle:       resp.Vehicle,
		License:       resp.License,
		SlotID:        resp.SlotID,
		Zone:          resp.Zone,
		DurationHours: resp.DurationHours,
		Rate:          resp.Rate,
		Cost:          resp.Cost,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
