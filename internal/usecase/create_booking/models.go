package create_booking

import (
	"time"

	"github.com/google/uuid"
)

// Request new booking
type Request struct {
	Name            string
	Phone           string
	Email           *string
	GameType        string
	Date            time.Time // calendar day
	TimeSlot        string    // start slot label, e.g. "2:00 PM"
	DurationMinutes int
	NumPeople       int
	SpecialRequests *string
}

// Response created booking
type Response struct {
	ID              uuid.UUID
	ReferenceNumber string
	Name            string
	Phone           string
	Email           *string
	GameType        string
	Date            time.Time
	TimeSlot        string
	DurationMinutes int
	NumPeople       int
	Price           float64
	Status          string
	SpecialRequests *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
