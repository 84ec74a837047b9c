package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a station reservation in the lounge
type Booking struct {
	ID              uuid.UUID
	ReferenceNumber string
	Name            string
	Phone           string
	Email           *string
	GameType        string
	Date            time.Time // calendar day, time part is ignored
	TimeSlot        string    // start slot label, e.g. "2:00 PM"
	DurationMinutes int
	NumPeople       int
	Price           float64
	Status          BookingStatus
	SpecialRequests *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still holds its slots
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCompleted returns true if the booking is completed
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// BookingUpdate partial update applied by staff
type BookingUpdate struct {
	Status          *BookingStatus
	SpecialRequests *string
}

// IsEmpty returns true if the update changes nothing
func (u BookingUpdate) IsEmpty() bool {
	return u.Status == nil && u.SpecialRequests == nil
}

// BookingsFilter filter for booking listings, all fields optional
type BookingsFilter struct {
	Date     *time.Time
	GameType *string
	Status   *BookingStatus
}

// ParseBookingStatus converts a raw string into a known status
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	switch status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}

// OpenStatuses statuses a booking can have before its day is over
var OpenStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
