package list_bookings

import (
	"strings"
	"time"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
	"github.com/m04kA/GameLounge-BookingService/internal/service/bookings/models"
)

// ToServiceRequest builds the filter from optional query parameters
func ToServiceRequest(dateStr, gameType, status string) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if gameType = strings.TrimSpace(gameType); gameType != "" {
		req.GameType = &gameType
	}

	if status = strings.TrimSpace(status); status != "" {
		req.Status = &status
	}

	return req, nil
}
