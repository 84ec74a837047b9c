package models

import (
	"time"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
)

// ListBookingsRequest optional filters for a booking listing
type ListBookingsRequest struct {
	Date     *time.Time
	GameType *string
	Status   *string
}

// UpdateBookingRequest staff update of a booking
type UpdateBookingRequest struct {
	Status          *string `json:"status,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// BookingResponse booking as returned by the API
type BookingResponse struct {
	ID              string  `json:"id"`
	ReferenceNumber string  `json:"referenceNumber"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           *string `json:"email,omitempty"`
	GameType        string  `json:"gameType"`
	Date            string  `json:"date"`     // "2025-10-15"
	TimeSlot        string  `json:"timeSlot"` // "2:00 PM"
	DurationMinutes int     `json:"durationMinutes"`
	NumPeople       int     `json:"numPeople"`
	Price           float64 `json:"price"`
	Status          string  `json:"status"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// BookingListResponse list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking converts a domain booking
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID.String(),
		ReferenceNumber: b.ReferenceNumber,
		Name:            b.Name,
		Phone:           b.Phone,
		Email:           b.Email,
		GameType:        b.GameType,
		Date:            b.Date.Format(domain.DateFormat),
		TimeSlot:        b.TimeSlot,
		DurationMinutes: b.DurationMinutes,
		NumPeople:       b.NumPeople,
		Price:           b.Price,
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList converts a list of domain bookings
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}
