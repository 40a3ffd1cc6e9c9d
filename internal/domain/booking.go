package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a parking booking
type Booking struct {
	ID            string
	Name          string
	Phone         string
	Vehicle       string
	License       string
	SlotID        string
	Zone          string
	DurationHours int
	Cost          float64 // DurationHours × rate at creation time
	Status        BookingStatus
	CreatedAt     time.Time
	CheckoutTime  *time.Time
}

// IsActive returns true if the booking still holds its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// IsCompleted returns true if the booking has been checked out
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// BookingsSummary aggregates a list of bookings
type BookingsSummary struct {
	Active    int
	Completed int
	TotalCost float64
}

// SummarizeBookings counts bookings per status and sums their cost
func SummarizeBookings(bookings []*Booking) BookingsSummary {
	var summary BookingsSummary
	for _, b := range bookings {
		switch b.Status {
		case StatusActive:
			summary.Active++
		case StatusCompleted:
			summary.Completed++
		}
		summary.TotalCost += b.Cost
	}
	return summary
}

// ActivityLogEntry is a write-only audit record owned by the store
type ActivityLogEntry struct {
	ID        int64
	Timestamp time.Time
	Actor     string
	Action    string
	Details   string
}
