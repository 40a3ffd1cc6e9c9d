package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Status *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	Vehicle       string     `json:"vehicle"`
	License       string     `json:"license"`
	SlotID        string     `json:"slotId"`
	Zone          string     `json:"zone"`
	DurationHours int        `json:"durationHours"`
	Cost          float64    `json:"cost"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	CheckoutTime  *time.Time `json:"checkoutTime,omitempty"`
}

// SummaryResponse сводка по списку бронирований
type SummaryResponse struct {
	Active    int     `json:"active"`
	Completed int     `json:"completed"`
	TotalCost float64 `json:"totalCost"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Summary  SummaryResponse   `json:"summary"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		Name:          b.Name,
		Phone:         b.Phone,
		Vehicle:       b.Vehicle,
		License:       b.License,
		SlotID:        b.SlotID,
		Zone:          b.Zone,
		DurationHours: b.DurationHours,
		Cost:          b.Cost,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		CheckoutTime:  b.CheckoutTime,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO со сводкой
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	summary := domain.SummarizeBookings(bookings)

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Summary: SummaryResponse{
			Active:    summary.Active,
			Completed: summary.Completed,
			TotalCost: summary.TotalCost,
		},
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	switch s {
	case domain.StatusActive, domain.StatusCompleted:
		return s, nil
	}

	return "", ErrInvalidStatus
}
