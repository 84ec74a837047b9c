package create_booking

import (
	"time"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
	"github.com/m04kA/GameLounge-BookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/GameLounge-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           *string `json:"email,omitempty"`
	GameType        string  `json:"gameType"`
	Date            string  `json:"date"`     // "2025-10-15"
	TimeSlot        string  `json:"timeSlot"` // "2:00 PM"
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	NumPeople       int     `json:"numPeople"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// ToUseCaseRequest converts the HTTP request; a missing duration takes defaultDuration
func (r *CreateBookingRequest) ToUseCaseRequest(defaultDuration int) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	duration := defaultDuration
	if r.DurationMinutes != nil {
		duration = *r.DurationMinutes
	}

	return &createBooking.Request{
		Name:            r.Name,
		Phone:           r.Phone,
		Email:           r.Email,
		GameType:        r.GameType,
		Date:            date,
		TimeSlot:        r.TimeSlot,
		DurationMinutes: duration,
		NumPeople:       r.NumPeople,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse converts the created booking
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return &models.BookingResponse{
		ID:              resp.ID.String(),
		ReferenceNumber: resp.ReferenceNumber,
		Name:            resp.Name,
		Phone:           resp.Phone,
		Email:           resp.Email,
		GameType:        resp.GameType,
		Date:            resp.Date.Format(domain.DateFormat),
		TimeSlot:        resp.TimeSlot,
		DurationMinutes: resp.DurationMinutes,
		NumPeople:       resp.NumPeople,
		Price:           resp.Price,
		Status:          resp.Status,
		SpecialRequests: resp.SpecialRequests,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
