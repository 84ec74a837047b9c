package get_availability

import (
	"fmt"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
	"github.com/m04kA/GameLounge-BookingService/internal/scheduling"
)

func validateRequest(req *Request, interval int) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes > domain.MaxBookingDurationMinutes {
		return fmt.Errorf("%w: duration exceeds %d minutes", ErrInvalidDuration, domain.MaxBookingDurationMinutes)
	}

	if _, err := scheduling.SlotCount(req.DurationMinutes, interval); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}

	return nil
}
